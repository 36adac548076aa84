package msm_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arkhive/zkaccel/curve"
	"github.com/arkhive/zkaccel/msm"
)

type scalarsAndPoints struct {
	Scalars []*big.Int
	Points  []curve.Affine
}

// scalarsAndPointsGen derives n pseudo-random valid curve points as (i+1)*G
// (so every sample is guaranteed on-curve without a second heavy generator)
// paired with n random scalars reduced mod the group order.
func scalarsAndPointsGen(cfg *curve.CurveConfig, n int) gopter.Gen {
	byteLen := (cfg.Order.BitLen() + 7) / 8
	return gen.SliceOfN(n*byteLen, gen.UInt8()).Map(func(bs []uint8) scalarsAndPoints {
		g := cfg.Generator().ToJacobian()
		scalars := make([]*big.Int, n)
		points := make([]curve.Affine, n)
		for i := 0; i < n; i++ {
			chunk := bs[i*byteLen : (i+1)*byteLen]
			v := new(big.Int).SetBytes(chunk)
			v.Mod(v, cfg.Order)
			scalars[i] = v
			points[i] = g.ScalarMul(big.NewInt(int64(i + 1))).ToAffine()
		}
		return scalarsAndPoints{Scalars: scalars, Points: points}
	})
}

// Law 16: for any matched (scalars, points), Pippenger equals the naive
// reference equals the result of the default Auto hint.
func TestMSMHintsAgreeWithNaive(t *testing.T) {
	cfg := curve.BN254
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 20
	props := gopter.NewProperties(params)

	for _, n := range []int{1, 8, 40} {
		n := n
		props.Property("hints agree for n="+strconv.Itoa(n), prop.ForAll(
			func(sp scalarsAndPoints) bool {
				naiveResult, err := msm.Compute(cfg, sp.Scalars, sp.Points,
					msm.WithAccelerationHint(msm.CPU), msm.WithNaiveThreshold(len(sp.Scalars)+1))
				if err != nil {
					return false
				}
				pippengerResult, err := msm.Compute(cfg, sp.Scalars, sp.Points,
					msm.WithAccelerationHint(msm.CPU), msm.WithNaiveThreshold(0))
				if err != nil {
					return false
				}
				autoResult, err := msm.Compute(cfg, sp.Scalars, sp.Points)
				if err != nil {
					return false
				}
				return naiveResult.Equal(pippengerResult) && naiveResult.Equal(autoResult)
			},
			scalarsAndPointsGen(cfg, n),
		))
	}

	props.TestingRun(t)
}

// Law 17: empty input is always the identity.
func TestMSMEmptyInputProperty(t *testing.T) {
	cfg := curve.BN254
	result, err := msm.Compute(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Infinity {
		t.Fatalf("expected identity for empty input")
	}
}

// Law 18: scalars are reduced mod n before use.
func TestMSMScalarReductionProperty(t *testing.T) {
	cfg := curve.BN254
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 20
	props := gopter.NewProperties(params)

	props.Property("msm(s, P) == msm(s mod n, P)", prop.ForAll(
		func(sp scalarsAndPoints, k uint8) bool {
			shifted := make([]*big.Int, len(sp.Scalars))
			for i, s := range sp.Scalars {
				shifted[i] = new(big.Int).Add(s, new(big.Int).Mul(cfg.Order, big.NewInt(int64(k)+1)))
			}
			r1, err := msm.Compute(cfg, sp.Scalars, sp.Points)
			if err != nil {
				return false
			}
			r2, err := msm.Compute(cfg, shifted, sp.Points)
			if err != nil {
				return false
			}
			return r1.Equal(r2)
		},
		scalarsAndPointsGen(cfg, 5), gen.UInt8(),
	))

	props.TestingRun(t)
}
