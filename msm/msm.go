package msm

import (
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/arkhive/zkaccel/curve"
	"github.com/arkhive/zkaccel/internal/zklog"
	"github.com/arkhive/zkaccel/zkerr"
)

// Compute evaluates Σ scalars[i]·points[i] on cfg, dispatching between the
// naive, Pippenger, and hybrid CPU/GPU strategies according to opts.
func Compute(cfg *curve.CurveConfig, scalars []*big.Int, points []curve.Affine, opts ...Option) (curve.Affine, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}

	if c.validateInputs {
		if len(scalars) != len(points) {
			return curve.Affine{}, zkerr.New(zkerr.InvalidInputSize, "scalar and point count mismatch",
				"scalars", len(scalars), "points", len(points))
		}
		for i, p := range points {
			if !p.IsOnCurve() {
				return curve.Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "point not on curve", "index", i)
			}
		}
		reduced := make([]*big.Int, len(scalars))
		for i, s := range scalars {
			reduced[i] = new(big.Int).Mod(s, cfg.Order)
		}
		scalars = reduced
	}

	if len(scalars) == 0 {
		return cfg.Identity(), nil
	}

	n := len(scalars)
	hint := c.hint
	if hint == Auto {
		hint = autoHint(c, n)
	}

	var result curve.Jacobian
	switch hint {
	case CPU:
		result = computeCPU(cfg, scalars, points, c, n)
	case GPU:
		result = computeGPU(cfg, scalars, points, c, n)
	case Hybrid:
		var err error
		result, err = computeHybrid(cfg, scalars, points, c, n)
		if err != nil {
			return curve.Affine{}, err
		}
	default:
		result = computeCPU(cfg, scalars, points, c, n)
	}

	return result.ToAffine(), nil
}

func autoHint(c *config, n int) AccelerationHint {
	if c.backend != nil && c.backend.Available() && n >= c.gpuThreshold {
		return Hybrid
	}
	return CPU
}

func computeCPU(cfg *curve.CurveConfig, scalars []*big.Int, points []curve.Affine, c *config, n int) curve.Jacobian {
	if n < c.naiveThreshold {
		return naive(scalars, points, cfg)
	}
	w := c.windowSize
	if w == 0 {
		w = windowSizeFor(n)
	}
	return pippenger(scalars, points, cfg, w)
}

func computeGPU(cfg *curve.CurveConfig, scalars []*big.Int, points []curve.Affine, c *config, n int) curve.Jacobian {
	if c.backend == nil || !c.backend.Available() {
		zklog.Logger().Debug().Msg("msm: gpu backend unavailable, degrading to cpu")
		return computeCPU(cfg, scalars, points, c, n)
	}
	result, err := c.backend.Compute(scalars, points)
	if err != nil {
		zklog.Logger().Debug().Err(err).Msg("msm: gpu backend failed, degrading to cpu")
		return computeCPU(cfg, scalars, points, c, n)
	}
	return result
}

// computeHybrid partitions the input between CPU (first half) and GPU
// (second half), runs both partial MSMs concurrently via an errgroup, and
// adds their results (the one place this engine runs two computations in
// parallel).
func computeHybrid(cfg *curve.CurveConfig, scalars []*big.Int, points []curve.Affine, c *config, n int) (curve.Jacobian, error) {
	if c.backend == nil || !c.backend.Available() {
		zklog.Logger().Debug().Msg("msm: hybrid requested without an available gpu backend, degrading to cpu")
		return computeCPU(cfg, scalars, points, c, n), nil
	}

	mid := n / 2
	cpuScalars, cpuPoints := scalars[:mid], points[:mid]
	gpuScalars, gpuPoints := scalars[mid:], points[mid:]

	var cpuResult, gpuResult curve.Jacobian
	var g errgroup.Group
	g.Go(func() error {
		cpuResult = computeCPU(cfg, cpuScalars, cpuPoints, c, len(cpuScalars))
		return nil
	})
	g.Go(func() error {
		r, err := c.backend.Compute(gpuScalars, gpuPoints)
		if err != nil {
			return err
		}
		gpuResult = r
		return nil
	})
	if err := g.Wait(); err != nil {
		zklog.Logger().Debug().Err(err).Msg("msm: gpu partition failed in hybrid mode, degrading to cpu")
		return computeCPU(cfg, scalars, points, c, n), nil
	}
	return cpuResult.Add(gpuResult), nil
}
