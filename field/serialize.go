package field

import (
	"encoding/hex"
	"strings"

	"github.com/arkhive/zkaccel/zkerr"
)

// Endian selects byte order for ToBytes/FromBytes.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

// ToBytes serializes e to a fixed-width buffer of cfg.ByteLen() bytes in
// standard (non-Montgomery) form.
func (e Element) ToBytes(endian Endian) []byte {
	std := make([]uint64, e.cfg.limbs)
	one := make([]uint64, e.cfg.limbs)
	one[0] = 1
	mulGeneric(std, e.limbs, one, e.cfg)

	buf := make([]byte, e.cfg.byteLen)
	// Render the limb array (little-endian words) into a big-endian byte
	// string of the minimal width, then flip if little-endian was asked.
	full := make([]byte, e.cfg.limbs*8)
	for i, w := range std {
		off := (e.cfg.limbs - 1 - i) * 8
		full[off+0] = byte(w >> 56)
		full[off+1] = byte(w >> 48)
		full[off+2] = byte(w >> 40)
		full[off+3] = byte(w >> 32)
		full[off+4] = byte(w >> 24)
		full[off+5] = byte(w >> 16)
		full[off+6] = byte(w >> 8)
		full[off+7] = byte(w)
	}
	copy(buf, full[len(full)-e.cfg.byteLen:])

	if endian == BigEndian {
		return buf
	}
	reversed := make([]byte, len(buf))
	for i, b := range buf {
		reversed[len(buf)-1-i] = b
	}
	return reversed
}

// FromBytes deserializes buf (exactly cfg.ByteLen() bytes) into a field
// element, failing with zkerr.InvalidFieldElement if the encoded integer is
// >= the modulus or buf has the wrong length.
func (c *FieldConfig) FromBytes(buf []byte, endian Endian) (Element, error) {
	if len(buf) != c.byteLen {
		return Element{}, zkerr.New(zkerr.InvalidFieldElement, "wrong byte length",
			"got", len(buf), "want", c.byteLen)
	}

	be := buf
	if endian == LittleEndian {
		be = make([]byte, len(buf))
		for i, b := range buf {
			be[len(buf)-1-i] = b
		}
	}

	full := make([]byte, c.limbs*8)
	copy(full[len(full)-c.byteLen:], be)

	std := make([]uint64, c.limbs)
	for i := 0; i < c.limbs; i++ {
		off := (c.limbs - 1 - i) * 8
		std[i] = uint64(full[off])<<56 | uint64(full[off+1])<<48 | uint64(full[off+2])<<40 |
			uint64(full[off+3])<<32 | uint64(full[off+4])<<24 | uint64(full[off+5])<<16 |
			uint64(full[off+6])<<8 | uint64(full[off+7])
	}

	if cmpLimbs(std, c.p) >= 0 {
		return Element{}, zkerr.New(zkerr.InvalidFieldElement, "value >= modulus")
	}

	mont := make([]uint64, c.limbs)
	mulGeneric(mont, std, c.r2, c)
	return c.newRaw(mont), nil
}

// ToHex renders ToBytes(BigEndian) as a "0x"-prefixed hex string.
func (e Element) ToHex() string {
	return "0x" + hex.EncodeToString(e.ToBytes(BigEndian))
}

// FromHex parses a hex string (with or without a "0x" prefix) in big-endian
// byte order.
func (c *FieldConfig) FromHex(s string) (Element, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Element{}, zkerr.Wrap(zkerr.InvalidFieldElement, "malformed hex string", err)
	}
	if len(buf) < c.byteLen {
		padded := make([]byte, c.byteLen)
		copy(padded[c.byteLen-len(buf):], buf)
		buf = padded
	}
	return c.FromBytes(buf, BigEndian)
}
