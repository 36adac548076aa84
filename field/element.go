package field

import (
	"math/big"

	"github.com/arkhive/zkaccel/zkerr"
)

// Element is an immutable value of F_p for some *FieldConfig. Internally it
// stores the Montgomery representation (value*R mod p); every exported
// constructor and accessor converts at the boundary so the observable
// contract (decimal/byte/hex values) is plain standard form.
//
// Two Elements may only be combined when they share the same *FieldConfig
// pointer (sameField), never merely an equal modulus value.
type Element struct {
	limbs []uint64
	cfg   *FieldConfig
}

// Config returns the field this element belongs to.
func (e Element) Config() *FieldConfig { return e.cfg }

func (c *FieldConfig) newRaw(limbs []uint64) Element {
	return Element{limbs: limbs, cfg: c}
}

// Zero returns the additive identity of c.
func (c *FieldConfig) Zero() Element {
	return c.newRaw(make([]uint64, c.limbs))
}

// One returns the multiplicative identity of c.
func (c *FieldConfig) One() Element {
	out := make([]uint64, c.limbs)
	copy(out, c.one)
	return c.newRaw(out)
}

// NewElement reduces v modulo p and returns the corresponding field
// element, converting into Montgomery form.
func (c *FieldConfig) NewElement(v *big.Int) Element {
	reduced := new(big.Int).Mod(v, c.Modulus())
	std := bigToLimbs(reduced, c.limbs)
	mont := make([]uint64, c.limbs)
	mulGeneric(mont, std, c.r2, c)
	return c.newRaw(mont)
}

// NewElementFromUint64 is a convenience constructor for small values.
func (c *FieldConfig) NewElementFromUint64(v uint64) Element {
	return c.NewElement(new(big.Int).SetUint64(v))
}

// BigInt returns the standard-form (non-Montgomery) integer value of e in
// [0, p).
func (e Element) BigInt() *big.Int {
	std := make([]uint64, e.cfg.limbs)
	one := make([]uint64, e.cfg.limbs)
	one[0] = 1
	mulGeneric(std, e.limbs, one, e.cfg)
	return limbsToBig(std)
}

func (a Element) sameField(b Element) error {
	if a.cfg != b.cfg {
		return zkerr.New(zkerr.InvalidFieldElement, "operands belong to different fields",
			"lhs", a.cfg.Name, "rhs", b.cfg.Name)
	}
	return nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return isZeroLimbs(e.limbs) }

// Eq reports limb-wise equality of two elements in the same field. A
// mismatched modulus is a usage error, not a value comparison: Eq still
// returns false (not an error) for mismatched fields, matching Go's
// Equal-method idiom; use MustEq if you want mismatch to surface as an
// error instead.
func (e Element) Eq(o Element) bool {
	if e.cfg != o.cfg {
		return false
	}
	return cmpLimbs(e.limbs, o.limbs) == 0
}

// MustEq is Eq but returns (false, err) on mismatched fields instead of
// silently returning false, for callers that must distinguish "different
// value" from "not comparable".
func (e Element) MustEq(o Element) (bool, error) {
	if err := e.sameField(o); err != nil {
		return false, err
	}
	return cmpLimbs(e.limbs, o.limbs) == 0, nil
}

// mulGeneric computes z = x*y*R^-1 mod p using Acar's CIOS method, the same
// shape gnark-crypto's generated Element.mulGeneric uses before falling
// back to NoCarry/asm fast paths: here there is a single generic path,
// looped over cfg.limbs instead of unrolled per curve.
func mulGeneric(z, x, y []uint64, cfg *FieldConfig) {
	l := cfg.limbs
	t := make([]uint64, l+2)

	for i := 0; i < l; i++ {
		var c uint64
		for j := 0; j < l; j++ {
			hi, lo := madd(x[i], y[j], t[j], c)
			t[j] = lo
			c = hi
		}
		lo, carry := addWithCarry(t[l], c)
		t[l] = lo
		t[l+1] += carry

		m := t[0] * cfg.npPrime

		var c2 uint64
		for j := 0; j < l; j++ {
			hi, lo := madd(m, cfg.p[j], t[j], c2)
			t[j] = lo
			c2 = hi
		}
		lo2, carry2 := addWithCarry(t[l], c2)
		t[l] = lo2
		t[l+1] += carry2

		copy(t, t[1:l+2])
		t[l+1] = 0
	}

	if cmpLimbs(t[:l], cfg.p) >= 0 {
		subLimbs(t[:l], t[:l], cfg.p)
	}
	copy(z, t[:l])
}

func addWithCarry(a, b uint64) (sum, carry uint64) {
	sum = a + b
	if sum < a {
		carry = 1
	}
	return
}
