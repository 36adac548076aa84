package curve

import "github.com/arkhive/zkaccel/field"

// Affine is a point in affine coordinates. Infinity carries an explicit
// flag rather than a sentinel (0,0) encoding.
type Affine struct {
	X, Y     field.Element
	Infinity bool
	Curve    *CurveConfig
}

// Jacobian is a point in Jacobian coordinates: the affine equivalent is
// (X/Z², Y/Z³); the identity is (1,1,0).
type Jacobian struct {
	X, Y, Z field.Element
	Curve   *CurveConfig
}

// Projective is a point in projective coordinates: the affine equivalent is
// (X/Z, Y/Z); the identity is (0,1,0).
type Projective struct {
	X, Y, Z field.Element
	Curve   *CurveConfig
}

// Identity returns the point at infinity in affine coordinates.
func (c *CurveConfig) Identity() Affine {
	return Affine{X: c.Base.Zero(), Y: c.Base.Zero(), Infinity: true, Curve: c}
}

// Generator returns the fixed affine generator.
func (c *CurveConfig) Generator() Affine {
	return Affine{X: c.Gx, Y: c.Gy, Curve: c}
}

// IdentityJacobian returns the point at infinity in Jacobian coordinates:
// (1, 1, 0).
func (c *CurveConfig) IdentityJacobian() Jacobian {
	return Jacobian{X: c.Base.One(), Y: c.Base.One(), Z: c.Base.Zero(), Curve: c}
}

// ToJacobian normalizes p into Jacobian coordinates (Z=1), the entry point
// every internal operation uses regardless of the caller's representation.
func (p Affine) ToJacobian() Jacobian {
	if p.Infinity {
		return p.Curve.IdentityJacobian()
	}
	return Jacobian{X: p.X, Y: p.Y, Z: p.Curve.Base.One(), Curve: p.Curve}
}

// ToAffine converts a Jacobian point back to affine, paying a single field
// inversion (see BatchToAffine for converting many points at once with a
// single shared inversion).
func (p Jacobian) ToAffine() Affine {
	if p.Z.IsZero() {
		return p.Curve.Identity()
	}
	zInv, err := p.Z.Inv()
	if err != nil {
		panic("curve: non-identity point with zero Z")
	}
	zInv2 := zInv.Square()
	zInv3, _ := zInv2.Mul(zInv)
	x, _ := p.X.Mul(zInv2)
	y, _ := p.Y.Mul(zInv3)
	return Affine{X: x, Y: y, Curve: p.Curve}
}

// ToProjective converts a Jacobian point to projective coordinates:
// (x,y,z)_proj = (X·Z, Y, Z²·Z) = (X·Z, Y, Z³), consistent with the
// (X/Z, Y/Z) affine equivalence for projective points.
func (p Jacobian) ToProjective() Projective {
	z2, _ := p.Z.Mul(p.Z)
	x, _ := p.X.Mul(p.Z)
	z3, _ := p.Z.Mul(z2)
	return Projective{X: x, Y: p.Y, Z: z3, Curve: p.Curve}
}

// IsOnCurve returns true iff p is the identity or y² = x³ + a·x + b (mod p).
func (p Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	return p.ToJacobian().IsOnCurve()
}

// IsOnCurve checks the homogeneous curve equation directly in Jacobian
// coordinates: Y² = X³ + a·X·Z⁴ + b·Z⁶.
func (p Jacobian) IsOnCurve() bool {
	if p.Z.IsZero() {
		return true
	}
	left := p.Y.Square()

	x2 := p.X.Square()
	x3, _ := x2.Mul(p.X)

	z2 := p.Z.Square()
	z4 := z2.Square()
	z6, _ := z4.Mul(z2)

	bz6, _ := p.Curve.B.Mul(z6)
	right, _ := x3.Add(bz6)

	if !p.Curve.A.IsZero() {
		az4x, _ := p.Curve.A.Mul(z4)
		az4x, _ = az4x.Mul(p.X)
		right, _ = right.Add(az4x)
	}

	return left.Eq(right)
}

// Equal tests affine equality (coordinate-wise, with both infinities equal
// to each other).
func (p Affine) Equal(q Affine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Eq(q.X) && p.Y.Eq(q.Y)
}

// Equal tests Jacobian equality by normalizing both sides to affine.
func (p Jacobian) Equal(q Jacobian) bool {
	if p.Z.IsZero() && q.Z.IsZero() {
		return true
	}
	if p.Z.IsZero() != q.Z.IsZero() {
		return false
	}
	return p.ToAffine().Equal(q.ToAffine())
}

// Neg returns -P = (x, -y); the identity negates to itself.
func (p Affine) Neg() Affine {
	if p.Infinity {
		return p
	}
	return Affine{X: p.X, Y: p.Y.Neg(), Curve: p.Curve}
}

// Neg returns -P in Jacobian coordinates.
func (p Jacobian) Neg() Jacobian {
	return Jacobian{X: p.X, Y: p.Y.Neg(), Z: p.Z, Curve: p.Curve}
}

// BatchToAffine converts many Jacobian points to affine using a single
// shared field inversion (Montgomery's batch-inversion trick), matching
// gnark-crypto's BatchJacobianToAffineG1Affine.
func BatchToAffine(points []Jacobian) []Affine {
	out := make([]Affine, len(points))
	if len(points) == 0 {
		return out
	}
	cfg := points[0].Curve

	nonZero := make([]field.Element, 0, len(points))
	idx := make([]int, 0, len(points))
	for i, p := range points {
		if !p.Z.IsZero() {
			nonZero = append(nonZero, p.Z)
			idx = append(idx, i)
		} else {
			out[i] = cfg.Identity()
		}
	}

	invs, err := field.BatchInv(nonZero)
	if err != nil {
		// unreachable: nonZero contains only non-zero elements by construction
		panic(err)
	}

	for k, i := range idx {
		zInv := invs[k]
		zInv2 := zInv.Square()
		zInv3, _ := zInv2.Mul(zInv)
		x, _ := points[i].X.Mul(zInv2)
		y, _ := points[i].Y.Mul(zInv3)
		out[i] = Affine{X: x, Y: y, Curve: cfg}
	}
	return out
}
