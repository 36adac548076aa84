// Package ntt implements the radix-2 Cooley-Tukey Number-Theoretic
// Transform over a scalar field, structured after gnark-crypto's
// ecc/<curve>/fr/fft package: a cached Domain holding twiddle factors,
// plus forward/inverse entry points operating in place.
package ntt

import (
	"math/big"
	"sync"

	"github.com/arkhive/zkaccel/field"
	"github.com/arkhive/zkaccel/internal/zklog"
	"github.com/arkhive/zkaccel/zkerr"
)

// generator2Adic holds a known multiplicative generator for each scalar
// field, used to derive a root of unity of the field's full 2-adic order.
// 5 generates the BN254 Fr group (see the retrieval pack's NTT precompile);
// 7 is the standard generator used for BLS12-381's Fr group.
var generator2Adic = map[*field.FieldConfig]int64{
	field.BN254Scalar:    5,
	field.BLS12381Scalar: 7,
}

// Domain holds the precomputed twiddle factors for transforms of a fixed
// size n over a fixed scalar field.
type Domain struct {
	Field *field.FieldConfig
	N     int

	twiddles    []field.Element
	twiddlesInv []field.Element
	nInv        field.Element
}

var (
	cacheMu sync.Mutex
	cache   = map[domainKey]*Domain{}
)

type domainKey struct {
	f *field.FieldConfig
	n int
}

// NewDomain returns the cached Domain for (f, n), building and caching it
// on first request. n must be a power of two dividing f's modulus minus
// one; otherwise the call fails with zkerr.UnsupportedNTTSize.
func NewDomain(f *field.FieldConfig, n int) (*Domain, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, zkerr.New(zkerr.UnsupportedNTTSize, "size must be a power of two", "n", n)
	}

	key := domainKey{f: f, n: n}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if d, ok := cache[key]; ok {
		return d, nil
	}

	d, err := buildDomain(f, n)
	if err != nil {
		return nil, err
	}
	zklog.Logger().Debug().Str("field", f.Name).Int("n", n).Msg("ntt domain cache miss: built new twiddle table")
	cache[key] = d
	return d, nil
}

func buildDomain(f *field.FieldConfig, n int) (*Domain, error) {
	gen, ok := generator2Adic[f]
	if !ok {
		return nil, zkerr.New(zkerr.UnsupportedNTTSize, "no known multiplicative generator for this field")
	}

	p := f.Modulus()
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))

	// Largest k such that 2^k | p-1 (the 2-adicity of p-1).
	k := 0
	rem := new(big.Int).Set(pMinus1)
	two := big.NewInt(2)
	for new(big.Int).Mod(rem, two).Sign() == 0 {
		rem.Div(rem, two)
		k++
	}

	nBig := big.NewInt(int64(n))
	twoToK := new(big.Int).Lsh(big.NewInt(1), uint(k))
	if nBig.Cmp(twoToK) > 0 {
		return nil, zkerr.New(zkerr.UnsupportedNTTSize, "n exceeds the field's maximum supported NTT size",
			"n", n, "max", twoToK.String())
	}

	// rootOfUnity is a 2^k-th root of unity; omega = rootOfUnity^(2^k/n) is
	// then an n-th root.
	rootExp := new(big.Int).Div(pMinus1, twoToK)
	genElem := f.NewElementFromUint64(uint64(gen))
	rootOfUnity, err := genElem.Pow(rootExp)
	if err != nil {
		return nil, zkerr.Wrap(zkerr.InternalError, "failed to derive root of unity", err)
	}

	scaleExp := new(big.Int).Div(twoToK, nBig)
	omega, err := rootOfUnity.Pow(scaleExp)
	if err != nil {
		return nil, zkerr.Wrap(zkerr.InternalError, "failed to scale root of unity", err)
	}
	omegaInv, err := omega.Inv()
	if err != nil {
		return nil, zkerr.Wrap(zkerr.InternalError, "root of unity was unexpectedly zero", err)
	}

	half := n / 2
	if half == 0 {
		half = 1
	}
	twiddles := make([]field.Element, half)
	twiddlesInv := make([]field.Element, half)
	twiddles[0] = f.One()
	twiddlesInv[0] = f.One()
	for i := 1; i < half; i++ {
		twiddles[i], _ = twiddles[i-1].Mul(omega)
		twiddlesInv[i], _ = twiddlesInv[i-1].Mul(omegaInv)
	}

	nInv, err := f.NewElementFromUint64(uint64(n)).Inv()
	if err != nil {
		return nil, zkerr.Wrap(zkerr.InternalError, "failed to invert n", err)
	}

	return &Domain{
		Field:       f,
		N:           n,
		twiddles:    twiddles,
		twiddlesInv: twiddlesInv,
		nInv:        nInv,
	}, nil
}
