package msm

import (
	"math/big"

	"github.com/arkhive/zkaccel/curve"
)

// Backend is a pluggable accelerator (conceptually a GPU kernel) for the
// MSM dispatch. Available reports whether the backend is usable in the
// current process; Compute runs scalars[i]*points[i] summed, on whatever
// scalars/points slices it is given (the dispatcher hands it one partition
// of the overall problem for the hybrid path, or the whole problem for the
// plain GPU hint).
type Backend interface {
	Available() bool
	Compute(scalars []*big.Int, points []curve.Affine) (curve.Jacobian, error)
}
