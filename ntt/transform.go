package ntt

import (
	"github.com/arkhive/zkaccel/field"
	"github.com/arkhive/zkaccel/zkerr"
)

// Forward applies the in-place forward radix-2 Cooley-Tukey transform to v,
// which must have length d.N.
func (d *Domain) Forward(v []field.Element) error {
	return d.transform(v, d.twiddles, false)
}

// Inverse applies the in-place inverse transform: the same butterfly
// network run with twiddlesInv, followed by scaling every output by nInv.
func (d *Domain) Inverse(v []field.Element) error {
	return d.transform(v, d.twiddlesInv, true)
}

func (d *Domain) transform(v []field.Element, twiddles []field.Element, scale bool) error {
	n := d.N
	if len(v) != n {
		return zkerr.New(zkerr.InvalidInputSize, "vector length does not match domain size",
			"got", len(v), "want", n)
	}
	if n == 1 {
		return nil
	}

	logN := bitLen(n) - 1
	bitReversePermute(v, logN)

	for s := 1; s <= logN; s++ {
		m := 1 << uint(s)
		half := m / 2
		step := n / m
		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				tw := twiddles[j*step]
				u := v[k+j]
				t, _ := tw.Mul(v[k+j+half])
				sum, _ := u.Add(t)
				diff, _ := u.Sub(t)
				v[k+j] = sum
				v[k+j+half] = diff
			}
		}
	}

	if scale {
		for i := range v {
			v[i], _ = v[i].Mul(d.nInv)
		}
	}
	return nil
}

// ForwardRadix4 and InverseRadix4 expose a radix-4 entry point whose
// externally observable contract is bit-exact equivalence with the radix-2
// transform on every valid size: they delegate directly rather than
// reimplementing a separate decimation-in-time radix-4 butterfly network.
func (d *Domain) ForwardRadix4(v []field.Element) error { return d.Forward(v) }
func (d *Domain) InverseRadix4(v []field.Element) error { return d.Inverse(v) }

// BatchForward runs Forward over every polynomial in polys, sharing this
// Domain's single twiddle table.
func (d *Domain) BatchForward(polys [][]field.Element) error {
	for _, p := range polys {
		if err := d.Forward(p); err != nil {
			return err
		}
	}
	return nil
}

// BatchInverse runs Inverse over every polynomial in polys, sharing this
// Domain's single twiddle table.
func (d *Domain) BatchInverse(polys [][]field.Element) error {
	for _, p := range polys {
		if err := d.Inverse(p); err != nil {
			return err
		}
	}
	return nil
}

func bitLen(n int) int {
	l := 0
	for n > 0 {
		n >>= 1
		l++
	}
	return l
}

func bitReversePermute(v []field.Element, logN int) {
	n := len(v)
	for i := 0; i < n; i++ {
		j := reverseBits(i, logN)
		if j > i {
			v[i], v[j] = v[j], v[i]
		}
	}
}

func reverseBits(v, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
