package ntt_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arkhive/zkaccel/field"
	"github.com/arkhive/zkaccel/ntt"
)

func vecGen(cfg *field.FieldConfig, n int) gopter.Gen {
	return gen.SliceOfN(n, gen.UInt64()).Map(func(vals []uint64) []field.Element {
		out := make([]field.Element, n)
		for i, v := range vals {
			out[i] = cfg.NewElementFromUint64(v)
		}
		return out
	})
}

func TestNTTRoundTripProperty(t *testing.T) {
	cfg := field.BN254Scalar
	sizes := []int{1, 2, 4, 8, 16, 32, 64, 256}

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 20
	props := gopter.NewProperties(params)

	for _, n := range sizes {
		n := n
		d, err := ntt.NewDomain(cfg, n)
		if err != nil {
			t.Fatalf("building domain for n=%d: %v", n, err)
		}

		props.Property("round-trip n="+strconv.Itoa(n), prop.ForAll(
			func(v []field.Element) bool {
				cp := append([]field.Element(nil), v...)
				if err := d.Forward(cp); err != nil {
					return false
				}
				if err := d.Inverse(cp); err != nil {
					return false
				}
				for i := range cp {
					eq, err := cp[i].MustEq(v[i])
					if err != nil || !eq {
						return false
					}
				}
				return true
			}, vecGen(cfg, n),
		))
	}

	props.TestingRun(t)
}

