package curve

import "math/big"

// Add computes p+q in Jacobian coordinates: identity short-circuits, then
// the U1/U2, S1/S2 equality tests route into Double or the identity, then
// the standard Jacobian add formulas (add-2007-bl) apply.
func (p Jacobian) Add(q Jacobian) Jacobian {
	if p.Z.IsZero() {
		return q
	}
	if q.Z.IsZero() {
		return p
	}

	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()

	u1, _ := p.X.Mul(z2z2)
	u2, _ := q.X.Mul(z1z1)

	z2cubed, _ := z2z2.Mul(q.Z)
	s1, _ := p.Y.Mul(z2cubed)
	z1cubed, _ := z1z1.Mul(p.Z)
	s2, _ := q.Y.Mul(z1cubed)

	if u1.Eq(u2) {
		if s1.Eq(s2) {
			return p.Double()
		}
		return p.Curve.IdentityJacobian()
	}

	h, _ := u2.Sub(u1)
	hh := h.Square()
	i := hh.Double().Double() // I = (2H)² = 4H²
	j, _ := h.Mul(i)
	sdiff, _ := s2.Sub(s1)
	r := sdiff.Double()
	v, _ := u1.Mul(i)

	r2 := r.Square()
	rj, _ := r2.Sub(j)
	x3, _ := rj.Sub(v.Double())

	vx3, _ := v.Sub(x3)
	rvx3, _ := vx3.Mul(r)
	s1j, _ := s1.Mul(j)
	s1j2 := s1j.Double()
	y3, _ := rvx3.Sub(s1j2)

	zsum, _ := p.Z.Add(q.Z)
	zsum2 := zsum.Square()
	zsum2mz1z1, _ := zsum2.Sub(z1z1)
	zdiff, _ := zsum2mz1z1.Sub(z2z2)
	z3, _ := zdiff.Mul(h)

	return Jacobian{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

// Double implements Jacobian point doubling (dbl-2007-bl):
// A=X², B=Y², C=B², D=2((X+B)²-A-C), E=3A, F=E²; X'=F-2D,
// Y'=E(D-X')-8C, Z'=2YZ.
func (p Jacobian) Double() Jacobian {
	if p.Z.IsZero() {
		return p
	}

	a := p.X.Square()
	b := p.Y.Square()
	c := b.Square()

	xb, _ := p.X.Add(b)
	xb2 := xb.Square()
	xb2ma, _ := xb2.Sub(a)
	xb2mac, _ := xb2ma.Sub(c)
	d := xb2mac.Double()

	e := a.Double()
	e, _ = e.Add(a)

	f := e.Square()

	d2 := d.Double()
	x3, _ := f.Sub(d2)

	dmx3, _ := d.Sub(x3)
	y3, _ := dmx3.Mul(e)
	c8 := c.Double().Double().Double()
	y3, _ = y3.Sub(c8)

	yz, _ := p.Y.Mul(p.Z)
	z3 := yz.Double()

	return Jacobian{X: x3, Y: y3, Z: z3, Curve: p.Curve}
}

// ScalarMul computes k·P via left-to-right double-and-add over the
// big-endian bits of k. k=0 returns identity, k=1 returns P.
func (p Jacobian) ScalarMul(k *big.Int) Jacobian {
	if k.Sign() == 0 {
		return p.Curve.IdentityJacobian()
	}
	if k.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	result := p.Curve.IdentityJacobian()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

// ScalarMulWindowed computes k·P with a width-w window: it precomputes
// [0·P, 1·P, ..., (2^w-1)·P], then processes w bits per iteration (w
// doublings, one windowed add). Returns the same point as ScalarMul for
// every input (a tested invariant).
func (p Jacobian) ScalarMulWindowed(k *big.Int, w int) Jacobian {
	if w <= 0 {
		w = 1
	}
	if k.Sign() == 0 {
		return p.Curve.IdentityJacobian()
	}

	tableSize := 1 << uint(w)
	table := make([]Jacobian, tableSize)
	table[0] = p.Curve.IdentityJacobian()
	for i := 1; i < tableSize; i++ {
		table[i] = table[i-1].Add(p)
	}

	bitLen := k.BitLen()
	nbWindows := (bitLen + w - 1) / w
	if nbWindows == 0 {
		nbWindows = 1
	}

	result := p.Curve.IdentityJacobian()
	for wi := nbWindows - 1; wi >= 0; wi-- {
		for j := 0; j < w; j++ {
			result = result.Double()
		}
		digit := 0
		for j := w - 1; j >= 0; j-- {
			bitIdx := wi*w + j
			digit <<= 1
			if bitIdx < bitLen && k.Bit(bitIdx) == 1 {
				digit |= 1
			}
		}
		if digit != 0 {
			result = result.Add(table[digit])
		}
	}
	return result
}

// ScalarMul is the affine-entry convenience wrapper: normalize to
// Jacobian, multiply, and convert back.
func (p Affine) ScalarMul(k *big.Int) Affine {
	return p.ToJacobian().ScalarMul(k).ToAffine()
}
