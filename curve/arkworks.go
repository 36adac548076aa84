package curve

import (
	"github.com/arkhive/zkaccel/field"
	"github.com/arkhive/zkaccel/zkerr"
)

// Arkworks flag bits, carried in the top two bits of the final byte.
const (
	arkFlagInfinity    byte = 1 << 7
	arkFlagLargestY    byte = 1 << 6
	arkFlagDataMask    byte = 0x3f
)

// ArkworksCompressed returns the Arkworks CanonicalSerialize-compatible
// compressed encoding: little-endian x, with the final byte's top two bits
// carrying the infinity flag and a "y is the lexicographically larger
// root" selector in place of SEC1's even/odd prefix byte.
func (p Affine) ArkworksCompressed() []byte {
	byteLen := p.Curve.Base.ByteLen()
	out := make([]byte, byteLen)
	if p.Infinity {
		out[byteLen-1] = arkFlagInfinity
		return out
	}
	copy(out, p.X.ToBytes(field.LittleEndian))
	if arkLargestY(p.Y) {
		out[byteLen-1] |= arkFlagLargestY
	}
	return out
}

// ArkworksUncompressed returns the Arkworks uncompressed encoding: x‖y,
// both little-endian, followed by the shared flags byte appended after
// the coordinates (identity zeroes every byte except the infinity flag).
func (p Affine) ArkworksUncompressed() []byte {
	byteLen := p.Curve.Base.ByteLen()
	out := make([]byte, 2*byteLen+1)
	if p.Infinity {
		out[len(out)-1] = arkFlagInfinity
		return out
	}
	copy(out[0:byteLen], p.X.ToBytes(field.LittleEndian))
	copy(out[byteLen:2*byteLen], p.Y.ToBytes(field.LittleEndian))
	if arkLargestY(p.Y) {
		out[len(out)-1] = arkFlagLargestY
	}
	return out
}

// SetArkworksCompressed decodes the ArkworksCompressed layout.
func (c *CurveConfig) SetArkworksCompressed(buf []byte) (Affine, error) {
	byteLen := c.Base.ByteLen()
	if len(buf) != byteLen {
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "wrong arkworks compressed length",
			"got", len(buf), "want", byteLen)
	}
	flags := buf[byteLen-1] &^ arkFlagDataMask
	if flags&arkFlagInfinity != 0 {
		return c.Identity(), nil
	}

	masked := make([]byte, byteLen)
	copy(masked, buf)
	masked[byteLen-1] &= arkFlagDataMask

	x, err := c.Base.FromBytes(masked, field.LittleEndian)
	if err != nil {
		return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid x coordinate", err)
	}
	y, err := c.recoverY(x)
	if err != nil {
		return Affine{}, err
	}
	wantLargest := flags&arkFlagLargestY != 0
	if arkLargestY(y) != wantLargest {
		y = y.Neg()
	}
	p := Affine{X: x, Y: y, Curve: c}
	if !p.IsOnCurve() {
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "decompressed point not on curve")
	}
	return p, nil
}

// SetArkworksUncompressed decodes the ArkworksUncompressed layout.
func (c *CurveConfig) SetArkworksUncompressed(buf []byte) (Affine, error) {
	byteLen := c.Base.ByteLen()
	want := 2*byteLen + 1
	if len(buf) != want {
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "wrong arkworks uncompressed length",
			"got", len(buf), "want", want)
	}
	flags := buf[len(buf)-1] &^ arkFlagDataMask
	if flags&arkFlagInfinity != 0 {
		return c.Identity(), nil
	}

	x, err := c.Base.FromBytes(buf[0:byteLen], field.LittleEndian)
	if err != nil {
		return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid x coordinate", err)
	}
	y, err := c.Base.FromBytes(buf[byteLen:2*byteLen], field.LittleEndian)
	if err != nil {
		return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid y coordinate", err)
	}
	p := Affine{X: x, Y: y, Curve: c}
	if !p.IsOnCurve() {
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "point not on curve")
	}
	return p, nil
}

// arkLargestY reports whether y is the lexicographically larger of the two
// square roots {y, -y}: the one whose big-endian byte string compares
// greater.
func arkLargestY(y field.Element) bool {
	neg := y.Neg()
	yb := y.ToBytes(field.BigEndian)
	nb := neg.ToBytes(field.BigEndian)
	for i := range yb {
		if yb[i] != nb[i] {
			return yb[i] > nb[i]
		}
	}
	return false
}
