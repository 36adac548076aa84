package curve

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/arkhive/zkaccel/field"
)

// HashToField derives a deterministic field element from domain and msg by
// hashing their concatenation with blake2b-256 and reducing the digest mod
// the field's modulus, the same construction Ring-SIS's genRandom uses to
// derive pseudorandom field elements from a seed. This only reaches into
// the base/scalar field, it is not a hash-to-curve map (no SWU, no
// isogeny correction), and exists for deterministic test-vector and
// domain-separated scalar derivation.
func HashToField(cfg *field.FieldConfig, domain string, msg []byte) field.Element {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(domain))
	h.Write(msg)
	digest := h.Sum(nil)
	return cfg.NewElement(new(big.Int).SetBytes(digest))
}
