package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkhive/zkaccel/curve"
)

func TestBN254GeneratorCompressDecompressRoundTrip(t *testing.T) {
	g := curve.BN254.Generator()
	require.True(t, g.IsOnCurve())

	compressed := g.Bytes()
	want := append([]byte{0x02}, make([]byte, 32)...)
	want[32] = 1
	require.Equal(t, want, compressed)

	back, err := curve.BN254.SetBytes(compressed)
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestBLS12381GeneratorCompressedAndUncompressedRoundTrip(t *testing.T) {
	g := curve.BLS12381.Generator()
	require.True(t, g.IsOnCurve())

	compressed := g.Bytes()
	back, err := curve.BLS12381.SetBytes(compressed)
	require.NoError(t, err)
	require.True(t, g.Equal(back))

	uncompressed := g.RawBytes()
	back2, err := curve.BLS12381.SetBytes(uncompressed)
	require.NoError(t, err)
	require.True(t, g.Equal(back2))
	require.Less(t, len(compressed), len(uncompressed))
}

func TestArkworksRoundTrip(t *testing.T) {
	for _, cfg := range []*curve.CurveConfig{curve.BN254, curve.BLS12381} {
		g := cfg.Generator()

		comp := g.ArkworksCompressed()
		back, err := cfg.SetArkworksCompressed(comp)
		require.NoError(t, err)
		require.True(t, g.Equal(back))

		uncomp := g.ArkworksUncompressed()
		back2, err := cfg.SetArkworksUncompressed(uncomp)
		require.NoError(t, err)
		require.True(t, g.Equal(back2))

		id := cfg.Identity()
		idComp := id.ArkworksCompressed()
		idBack, err := cfg.SetArkworksCompressed(idComp)
		require.NoError(t, err)
		require.True(t, idBack.Infinity)
	}
}

func TestPointPlusNegationEqualsIdentity(t *testing.T) {
	for _, cfg := range []*curve.CurveConfig{curve.BN254, curve.BLS12381} {
		g := cfg.Generator()
		sum := g.ToJacobian().Add(g.Neg().ToJacobian())
		require.True(t, sum.ToAffine().Infinity)
	}
}

func TestIdentityCompressDecompress(t *testing.T) {
	for _, cfg := range []*curve.CurveConfig{curve.BN254, curve.BLS12381} {
		id := cfg.Identity()
		require.Equal(t, []byte{0x00}, id.Bytes())
		require.Equal(t, []byte{0x00}, id.RawBytes())

		back, err := cfg.SetBytes([]byte{0x00})
		require.NoError(t, err)
		require.True(t, back.Infinity)
	}
}

func TestScalarMulWindowedAgreesWithBasic(t *testing.T) {
	for _, cfg := range []*curve.CurveConfig{curve.BN254, curve.BLS12381} {
		g := cfg.Generator().ToJacobian()
		for _, k := range []int64{0, 1, 2, 3, 17, 255, 4096} {
			kb := big.NewInt(k)
			basic := g.ScalarMul(kb)
			windowed := g.ScalarMulWindowed(kb, 4)
			require.True(t, basic.Equal(windowed), "k=%d", k)
		}
	}
}

func TestSetBytesRejectsBadPrefix(t *testing.T) {
	_, err := curve.BN254.SetBytes([]byte{0x99, 0x01})
	require.Error(t, err)
}

func TestSetBytesRejectsWrongLength(t *testing.T) {
	_, err := curve.BN254.SetBytes([]byte{0x02, 0x01})
	require.Error(t, err)
}

func TestHashToFieldIsDeterministic(t *testing.T) {
	a := curve.HashToField(curve.BN254.Scalar, "test-domain", []byte("hello"))
	b := curve.HashToField(curve.BN254.Scalar, "test-domain", []byte("hello"))
	eq, err := a.MustEq(b)
	require.NoError(t, err)
	require.True(t, eq)

	c := curve.HashToField(curve.BN254.Scalar, "test-domain", []byte("world"))
	eq2, err := a.MustEq(c)
	require.NoError(t, err)
	require.False(t, eq2)
}
