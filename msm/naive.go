package msm

import (
	"math/big"

	"github.com/arkhive/zkaccel/curve"
)

// naive sums scalarMul(s[i], p[i]) directly in Jacobian coordinates, the
// fallback path for small N and the reference every other path is checked
// against.
func naive(scalars []*big.Int, points []curve.Affine, cfg *curve.CurveConfig) curve.Jacobian {
	acc := cfg.IdentityJacobian()
	for i, s := range scalars {
		term := points[i].ToJacobian().ScalarMul(s)
		acc = acc.Add(term)
	}
	return acc
}
