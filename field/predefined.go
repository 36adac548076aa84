package field

import "math/big"

// The four predefined field configurations: BN254's base and scalar
// fields, and BLS12-381's base and scalar fields. Limb counts follow the
// curve-wide convention: 4 for BN254 (base and scalar
// both fit comfortably under 256 bits), 6 for BLS12-381 (the 381-bit base
// field needs 6 limbs, and the scalar field shares that width so a single
// curve uses one limb size throughout, matching gnark-crypto's own
// per-curve fp/fr pairing).
var (
	BN254Base      *FieldConfig
	BN254Scalar    *FieldConfig
	BLS12381Base   *FieldConfig
	BLS12381Scalar *FieldConfig
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: invalid decimal constant " + s)
	}
	return v
}

func init() {
	BN254Base = newFieldConfig("bn254.fp",
		mustBig("21888242871839275222246405745257275088696311157297823662689037894645226208583"), 4)
	BN254Scalar = newFieldConfig("bn254.fr",
		mustBig("21888242871839275222246405745257275088548364400416034343698204186575808495617"), 4)
	BLS12381Base = newFieldConfig("bls12381.fp",
		mustBig("4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"), 6)
	BLS12381Scalar = newFieldConfig("bls12381.fr",
		mustBig("52435875175126190479447740508185965837690552500527637822603658699938581184513"), 6)
}
