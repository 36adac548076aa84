package curve

import (
	"github.com/arkhive/zkaccel/field"
	"github.com/arkhive/zkaccel/zkerr"
)

// SEC1-style prefix bytes.
const (
	prefixIdentity    byte = 0x00
	prefixCompEven    byte = 0x02
	prefixCompOdd     byte = 0x03
	prefixUncompressed byte = 0x04
)

// Bytes returns the SEC1-style compressed encoding: a single prefix byte
// (0x00 for identity, 0x02/0x03 for the y-parity of a non-identity point)
// followed by the big-endian x-coordinate.
func (p Affine) Bytes() []byte {
	if p.Infinity {
		return []byte{prefixIdentity}
	}
	out := make([]byte, 1+p.Curve.Base.ByteLen())
	if isOdd(p.Y) {
		out[0] = prefixCompOdd
	} else {
		out[0] = prefixCompEven
	}
	copy(out[1:], p.X.ToBytes(field.BigEndian))
	return out
}

// RawBytes returns the SEC1-style uncompressed encoding: prefix 0x04
// followed by the big-endian x and y coordinates (or a lone 0x00 byte for
// the identity).
func (p Affine) RawBytes() []byte {
	if p.Infinity {
		return []byte{prefixIdentity}
	}
	byteLen := p.Curve.Base.ByteLen()
	out := make([]byte, 1+2*byteLen)
	out[0] = prefixUncompressed
	copy(out[1:1+byteLen], p.X.ToBytes(field.BigEndian))
	copy(out[1+byteLen:], p.Y.ToBytes(field.BigEndian))
	return out
}

// SetBytes decodes either the compressed or uncompressed SEC1-style
// encoding produced by Bytes/RawBytes, recovering y from x via the
// curve equation when the input is compressed. Fails with
// zkerr.InvalidCurvePoint on any malformed input, out-of-range
// coordinate, missing square root, or off-curve result.
func (c *CurveConfig) SetBytes(buf []byte) (Affine, error) {
	if len(buf) == 0 {
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "empty buffer")
	}
	if buf[0] == prefixIdentity {
		if len(buf) != 1 {
			return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "identity prefix must stand alone")
		}
		return c.Identity(), nil
	}

	byteLen := c.Base.ByteLen()
	switch buf[0] {
	case prefixCompEven, prefixCompOdd:
		if len(buf) != 1+byteLen {
			return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "wrong compressed length",
				"got", len(buf), "want", 1+byteLen)
		}
		x, err := c.Base.FromBytes(buf[1:], field.BigEndian)
		if err != nil {
			return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid x coordinate", err)
		}
		y, err := c.recoverY(x)
		if err != nil {
			return Affine{}, err
		}
		wantOdd := buf[0] == prefixCompOdd
		if isOdd(y) != wantOdd {
			y = y.Neg()
		}
		p := Affine{X: x, Y: y, Curve: c}
		if !p.IsOnCurve() {
			return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "decompressed point not on curve")
		}
		return p, nil

	case prefixUncompressed:
		if len(buf) != 1+2*byteLen {
			return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "wrong uncompressed length",
				"got", len(buf), "want", 1+2*byteLen)
		}
		x, err := c.Base.FromBytes(buf[1:1+byteLen], field.BigEndian)
		if err != nil {
			return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid x coordinate", err)
		}
		y, err := c.Base.FromBytes(buf[1+byteLen:], field.BigEndian)
		if err != nil {
			return Affine{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "invalid y coordinate", err)
		}
		p := Affine{X: x, Y: y, Curve: c}
		if !p.IsOnCurve() {
			return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "point not on curve")
		}
		return p, nil

	default:
		return Affine{}, zkerr.New(zkerr.InvalidCurvePoint, "unrecognized prefix byte", "prefix", buf[0])
	}
}

// recoverY computes y = sqrt(x^3 + a*x + b), verifying the root by
// squaring it back (both curves have p ≡ 3 mod 4, so sqrtExponent =
// (p+1)/4 always yields a valid root when one exists).
func (c *CurveConfig) recoverY(x field.Element) (field.Element, error) {
	x2 := x.Square()
	x3, _ := x2.Mul(x)
	rhs, _ := x3.Add(c.B)
	if !c.A.IsZero() {
		ax, _ := c.A.Mul(x)
		rhs, _ = rhs.Add(ax)
	}
	y, err := rhs.Pow(c.sqrtExponent)
	if err != nil {
		return field.Element{}, zkerr.Wrap(zkerr.InvalidCurvePoint, "square root exponentiation failed", err)
	}
	if !y.Square().Eq(rhs) {
		return field.Element{}, zkerr.New(zkerr.InvalidCurvePoint, "no square root exists for x")
	}
	return y, nil
}

// isOdd reports whether e's standard-form representation has its
// least-significant bit set.
func isOdd(e field.Element) bool {
	b := e.ToBytes(field.BigEndian)
	return len(b) > 0 && b[len(b)-1]&1 == 1
}
