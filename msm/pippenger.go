package msm

import (
	"math/big"

	"github.com/arkhive/zkaccel/curve"
)

// pippenger computes the windowed, bucketed multi-scalar multiplication
// described by the standard Pippenger method: split each scalar into W
// w-bit digits, bucket-sum per window (high bucket to low, running-sum
// trick), then combine windows least-significant-digit-last via a
// Horner-style left-shift-and-add.
func pippenger(scalars []*big.Int, points []curve.Affine, cfg *curve.CurveConfig, w int) curve.Jacobian {
	b := cfg.Order.BitLen()
	numWindows := (b + w - 1) / w
	if numWindows == 0 {
		numWindows = 1
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w)), big.NewInt(1))

	jacPoints := make([]curve.Jacobian, len(points))
	for i, p := range points {
		jacPoints[i] = p.ToJacobian()
	}

	partials := make([]curve.Jacobian, numWindows)
	for k := 0; k < numWindows; k++ {
		numBuckets := 1 << uint(w)
		buckets := make([]curve.Jacobian, numBuckets)
		for i := range buckets {
			buckets[i] = cfg.IdentityJacobian()
		}

		shift := uint(k * w)
		for i, s := range scalars {
			digit := new(big.Int).And(new(big.Int).Rsh(s, shift), mask)
			d := int(digit.Int64())
			if d == 0 {
				continue
			}
			buckets[d] = buckets[d].Add(jacPoints[i])
		}

		runningSum := cfg.IdentityJacobian()
		windowSum := cfg.IdentityJacobian()
		for bi := numBuckets - 1; bi >= 1; bi-- {
			runningSum = runningSum.Add(buckets[bi])
			windowSum = windowSum.Add(runningSum)
		}
		partials[k] = windowSum
	}

	acc := cfg.IdentityJacobian()
	for k := numWindows - 1; k >= 0; k-- {
		for j := 0; j < w; j++ {
			acc = acc.Double()
		}
		acc = acc.Add(partials[k])
	}
	return acc
}
