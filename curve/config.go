// Package curve implements short-Weierstrass curve arithmetic (y² = x³ +
// a·x + b) over BN254 and BLS12-381's G1 groups, following the coordinate
// conventions of gnark-crypto's generated point types (the "G1Affine" /
// "G1Jac" template at internal/templates/point/point.go in the retrieval
// pack) but as a single runtime-generic engine parameterised by
// *CurveConfig rather than per-curve generated code.
package curve

import (
	"math/big"

	"github.com/arkhive/zkaccel/field"
)

// CurveConfig describes a short-Weierstrass curve y² = x³ + a·x + b over a
// base field, together with a fixed affine generator and the prime
// subgroup order.
type CurveConfig struct {
	Name string

	Base *field.FieldConfig // the field coordinates live in
	Scalar *field.FieldConfig // the field scalars live in (order n)

	A, B field.Element // curve coefficients

	Gx, Gy field.Element // fixed affine generator

	Order *big.Int // prime subgroup order n

	sqrtExponent *big.Int // (p+1)/4, valid because p ≡ 3 (mod 4) for both curves
}

func newCurveConfig(name string, base, scalar *field.FieldConfig, a, b, gx, gy int64, order *big.Int) *CurveConfig {
	c := &CurveConfig{
		Name:   name,
		Base:   base,
		Scalar: scalar,
		A:      base.NewElementFromUint64(uint64(a)),
		B:      base.NewElementFromUint64(uint64(b)),
		Gx:     base.NewElementFromUint64(uint64(gx)),
		Gy:     base.NewElementFromUint64(uint64(gy)),
		Order:  order,
	}
	p := base.Modulus()
	mod4 := new(big.Int).Mod(p, big.NewInt(4))
	if mod4.Int64() != 3 {
		panic("curve: base field modulus must be 3 mod 4 for the sqrt routine used here")
	}
	c.sqrtExponent = new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
	return c
}

// newCurveConfigBig is newCurveConfig but for generator coordinates too
// large to fit an int64 (BLS12-381's G1 generator).
func newCurveConfigBig(name string, base, scalar *field.FieldConfig, a, b int64, gx, gy string, order *big.Int) *CurveConfig {
	c := newCurveConfig(name, base, scalar, a, b, 0, 0, order)
	c.Gx = base.NewElement(mustBig(gx))
	c.Gy = base.NewElement(mustBig(gy))
	return c
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: invalid decimal constant " + s)
	}
	return v
}
