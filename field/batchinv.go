package field

import "github.com/arkhive/zkaccel/zkerr"

// BatchInv inverts every element of in using Montgomery's trick: one
// inversion plus 3(n-1) multiplications instead of n inversions. All-or-
// nothing: if any element is zero the whole call fails with
// zkerr.DivisionByZero naming the offending index, and no partial result
// is returned.
func BatchInv(in []Element) ([]Element, error) {
	if len(in) == 0 {
		return nil, nil
	}
	cfg := in[0].cfg
	for i, e := range in {
		if e.cfg != cfg {
			return nil, zkerr.New(zkerr.InvalidFieldElement, "batch inversion requires a single field",
				"index", i)
		}
		if e.IsZero() {
			return nil, zkerr.New(zkerr.DivisionByZero, "cannot invert zero in batch", "index", i)
		}
	}

	n := len(in)
	prefix := make([]Element, n)
	prefix[0] = in[0]
	for i := 1; i < n; i++ {
		prefix[i], _ = prefix[i-1].Mul(in[i])
	}

	inv, err := prefix[n-1].Inv()
	if err != nil {
		return nil, err
	}

	out := make([]Element, n)
	for i := n - 1; i >= 1; i-- {
		out[i], _ = inv.Mul(prefix[i-1])
		inv, _ = inv.Mul(in[i])
	}
	out[0] = inv

	return out, nil
}
