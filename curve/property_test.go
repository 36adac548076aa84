package curve_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arkhive/zkaccel/curve"
)

// scalarGen produces a random scalar in [0, order).
func scalarGen(cfg *curve.CurveConfig) gopter.Gen {
	byteLen := (cfg.Order.BitLen() + 7) / 8
	return gen.SliceOfN(byteLen, gen.UInt8()).Map(func(bs []uint8) *big.Int {
		v := new(big.Int).SetBytes(bs)
		return v.Mod(v, cfg.Order)
	})
}

// pointGen derives a random curve point as scalar*G so every sample is
// guaranteed to be on the curve and in the prime-order subgroup.
func pointGen(cfg *curve.CurveConfig) gopter.Gen {
	g := cfg.Generator().ToJacobian()
	return scalarGen(cfg).Map(func(k *big.Int) curve.Jacobian {
		return g.ScalarMul(k)
	})
}

func checkCurveLaws(t *testing.T, name string, cfg *curve.CurveConfig) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	props := gopter.NewProperties(params)

	id := cfg.IdentityJacobian()
	g := cfg.Generator().ToJacobian()

	props.Property(name+": pointAdd commutative", prop.ForAll(
		func(p, q curve.Jacobian) bool {
			return p.Add(q).Equal(q.Add(p))
		}, pointGen(cfg), pointGen(cfg),
	))

	props.Property(name+": pointAdd associative", prop.ForAll(
		func(p, q, r curve.Jacobian) bool {
			left := p.Add(q).Add(r)
			right := p.Add(q.Add(r))
			return left.Equal(right)
		}, pointGen(cfg), pointGen(cfg), pointGen(cfg),
	))

	props.Property(name+": identity is neutral", prop.ForAll(
		func(p curve.Jacobian) bool {
			return p.Add(id).Equal(p) && id.Add(p).Equal(p)
		}, pointGen(cfg),
	))

	props.Property(name+": P + (-P) = identity", prop.ForAll(
		func(p curve.Jacobian) bool {
			return p.Add(p.Neg()).Equal(id)
		}, pointGen(cfg),
	))

	props.Property(name+": scalarMul base cases", prop.ForAll(
		func(p curve.Jacobian) bool {
			return p.ScalarMul(big.NewInt(0)).Equal(id) &&
				p.ScalarMul(big.NewInt(1)).Equal(p) &&
				p.ScalarMul(big.NewInt(2)).Equal(p.Add(p))
		}, pointGen(cfg),
	))

	props.Property(name+": scalarMul additive homomorphism", prop.ForAll(
		func(a, b *big.Int) bool {
			left := g.ScalarMul(new(big.Int).Add(a, b))
			right := g.ScalarMul(a).Add(g.ScalarMul(b))
			return left.Equal(right)
		}, scalarGen(cfg), scalarGen(cfg),
	))

	props.Property(name+": scalarMul multiplicative homomorphism", prop.ForAll(
		func(a, b *big.Int) bool {
			left := g.ScalarMul(new(big.Int).Mod(new(big.Int).Mul(a, b), cfg.Order))
			right := g.ScalarMul(a).ScalarMul(b)
			return left.Equal(right)
		}, scalarGen(cfg), scalarGen(cfg),
	))

	props.Property(name+": windowed agrees with basic scalarMul", prop.ForAll(
		func(k *big.Int) bool {
			return g.ScalarMul(k).Equal(g.ScalarMulWindowed(k, 5))
		}, scalarGen(cfg),
	))

	props.Property(name+": decompress(compress(P)) = P, SEC1", prop.ForAll(
		func(p curve.Jacobian) bool {
			a := p.ToAffine()
			back, err := cfg.SetBytes(a.Bytes())
			return err == nil && a.Equal(back)
		}, pointGen(cfg),
	))

	props.Property(name+": decompress(compress(P)) = P, Arkworks", prop.ForAll(
		func(p curve.Jacobian) bool {
			a := p.ToAffine()
			back, err := cfg.SetArkworksCompressed(a.ArkworksCompressed())
			return err == nil && a.Equal(back)
		}, pointGen(cfg),
	))

	props.Property(name+": compressed shorter than uncompressed", prop.ForAll(
		func(p curve.Jacobian) bool {
			a := p.ToAffine()
			return len(a.Bytes()) < len(a.RawBytes())
		}, pointGen(cfg),
	))

	props.Property(name+": isOnCurve(generator)", prop.ForAll(
		func(unused int) bool {
			return cfg.Generator().IsOnCurve()
		}, gen.Const(0),
	))

	props.TestingRun(t)
}

func TestCurveLaws(t *testing.T) {
	checkCurveLaws(t, "bn254", curve.BN254)
	checkCurveLaws(t, "bls12381", curve.BLS12381)
}
