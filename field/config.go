// Package field implements prime-field arithmetic in Montgomery form over
// the base and scalar fields of BN254 and BLS12-381, following the
// structural conventions of gnark-crypto's generated fp/fr element types
// (ecc/<curve>/fp, ecc/<curve>/fr) but as a single runtime-generic engine
// parameterised by *FieldConfig instead of per-curve generated code.
package field

import (
	"math/big"
	"math/bits"
)

// FieldConfig is the immutable description of a prime field F_p in
// Montgomery representation. Two elements may only be combined if they
// share the same *FieldConfig (same pointer); see Element.sameField.
type FieldConfig struct {
	Name string

	limbs int      // L: number of 64-bit limbs
	p     []uint64 // modulus, little-endian limbs
	r     []uint64 // R mod p
	rInv  []uint64 // R^-1 mod p
	r2    []uint64 // R^2 mod p
	one   []uint64 // Montgomery form of 1 (== r)

	npPrime uint64 // -p^-1 mod 2^64, the CIOS reduction constant

	byteLen int // ceil(bitlen(p)/8), the fixed serialization width
	bitLen  int
}

// Limbs reports L, the number of 64-bit limbs used to represent elements of
// this field.
func (c *FieldConfig) Limbs() int { return c.limbs }

// ByteLen reports the fixed serialization width in bytes: ceil(log2(p)/8).
func (c *FieldConfig) ByteLen() int { return c.byteLen }

// BitLen reports the bit length of the modulus.
func (c *FieldConfig) BitLen() int { return c.bitLen }

// Modulus returns a copy of the field modulus as a big.Int. Intended for
// diagnostics and config construction elsewhere (e.g. NTT root-of-unity
// search); the hot arithmetic paths never use big.Int.
func (c *FieldConfig) Modulus() *big.Int {
	return limbsToBig(c.p)
}

// newFieldConfig precomputes the Montgomery constants for modulus p using
// a fixed limb count L = ceil(bitlen(p)/64) rounded up to minLimbs (so that
// BN254's two fields and BLS12-381's two fields each use the curve-wide
// shared curve-wide limb count: 4 for BN254, 6 for BLS12-381).
func newFieldConfig(name string, modulus *big.Int, minLimbs int) *FieldConfig {
	bitLen := modulus.BitLen()
	limbs := (bitLen + 63) / 64
	if limbs < minLimbs {
		limbs = minLimbs
	}

	c := &FieldConfig{
		Name:    name,
		limbs:   limbs,
		bitLen:  bitLen,
		byteLen: (bitLen + 7) / 8,
	}
	c.p = bigToLimbs(modulus, limbs)

	// R = 2^(64*limbs)
	r := new(big.Int).Lsh(big.NewInt(1), uint(64*limbs))

	rModP := new(big.Int).Mod(r, modulus)
	c.r = bigToLimbs(rModP, limbs)
	c.one = c.r

	r2ModP := new(big.Int).Mod(new(big.Int).Mul(rModP, rModP), modulus)
	c.r2 = bigToLimbs(r2ModP, limbs)

	rInv := new(big.Int).ModInverse(r, modulus)
	if rInv == nil {
		panic("field: R is not invertible mod p; modulus must be odd")
	}
	c.rInv = bigToLimbs(rInv, limbs)

	c.npPrime = negModInverseWord(c.p[0])

	return c
}

// negModInverseWord computes -p0^-1 mod 2^64 via Hensel/Newton lifting,
// the classical word-size Montgomery setup constant. p0 must be odd (the
// low limb of an odd prime modulus always is).
func negModInverseWord(p0 uint64) uint64 {
	// inv converges quadratically to p0^-1 mod 2^64 starting from the
	// (trivially correct mod 2^3) seed p0 itself.
	inv := p0
	for i := 0; i < 6; i++ {
		inv = inv * (2 - p0*inv)
	}
	return -inv
}

func bigToLimbs(v *big.Int, limbs int) []uint64 {
	out := make([]uint64, limbs)
	words := v.Bits()
	for i := 0; i < len(words) && i < limbs; i++ {
		out[i] = uint64(words[i])
	}
	return out
}

func limbsToBig(limbs []uint64) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

// madd computes (carryOut, lo) such that carryOut*2^64 + lo == t + a*b + c.
// The sum never exceeds 2^128-1, so this never loses a carry.
func madd(a, b, t, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, t, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// cmpLimbs returns -1, 0, 1 as a <, ==, > b (same length, little-endian).
func cmpLimbs(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func subLimbs(dst, a, b []uint64) {
	var borrow uint64
	for i := range dst {
		var bi uint64
		dst[i], bi = bits.Sub64(a[i], b[i], borrow)
		borrow = bi
	}
}

func addLimbs(dst, a, b []uint64) uint64 {
	var carry uint64
	for i := range dst {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

func isZeroLimbs(a []uint64) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}
