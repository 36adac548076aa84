package curve

import "github.com/arkhive/zkaccel/field"

// BN254 and BLS12381 are the two predefined curve configurations.
// Both use a = 0; BN254 uses b = 3, BLS12-381 uses b = 4.
var (
	BN254    *CurveConfig
	BLS12381 *CurveConfig
)

func init() {
	BN254 = newCurveConfig("bn254", field.BN254Base, field.BN254Scalar,
		0, 3, 1, 2, field.BN254Scalar.Modulus())

	BLS12381 = newCurveConfigBig("bls12381", field.BLS12381Base, field.BLS12381Scalar,
		0, 4,
		"3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507",
		"1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569",
		field.BLS12381Scalar.Modulus())
}
