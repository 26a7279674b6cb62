package wire

import (
	"encoding/binary"
	"fmt"
)

// Size limits. A message is the 12-byte header plus at most
// MaxPayloadSize payload bytes.
const (
	// HeaderSize is the encoded size of a Header in bytes.
	HeaderSize = 12

	// MaxMessageSize is the maximum total message size (header + payload).
	MaxMessageSize = 8192

	// MaxPayloadSize is the maximum payload length.
	MaxPayloadSize = MaxMessageSize - HeaderSize
)

// Header is the fixed EM API message header.
//
// Version and Category are 4-bit fields sharing the first wire byte;
// both have a valid range of 0-15 and are masked, never rejected, on
// decode. Version is currently always 0.
type Header struct {
	Version    uint8 // protocol version, 4 bits
	Category   Category
	Tag        uint8 // correlation id matching a response to its request
	ReturnCode ReturnCode
	Opcode     Opcode
	A          uint8  // immediate A, opcode-specific
	Length     uint16 // payload bytes following the header
	B          uint32 // immediate B, opcode-specific
}

// Encode packs the header into its 12-byte wire form. Encode is total:
// fields wider than their wire width are masked down, and the reserved
// byte is always zero.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	buf[0] = (h.Version << 4) | (uint8(h.Category) & 0x0F)
	buf[1] = h.Tag
	buf[2] = uint8(h.ReturnCode)
	buf[3] = uint8(h.Opcode)
	buf[4] = h.A
	// buf[5] reserved, stays zero
	binary.LittleEndian.PutUint16(buf[6:8], h.Length)
	binary.LittleEndian.PutUint32(buf[8:12], h.B)
	return buf
}

// DecodeHeader unpacks a header from the first HeaderSize bytes of
// data. Bits outside a field's declared width are dropped; the
// reserved byte carries no meaning and is ignored.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, HeaderSize, len(data))
	}
	return Header{
		Version:    (data[0] >> 4) & 0x0F,
		Category:   Category(data[0] & 0x0F),
		Tag:        data[1],
		ReturnCode: ReturnCode(data[2]),
		Opcode:     Opcode(data[3]),
		A:          data[4],
		Length:     binary.LittleEndian.Uint16(data[6:8]),
		B:          binary.LittleEndian.Uint32(data[8:12]),
	}, nil
}

// FillHeader populates h with the given fields, stamping version 0,
// and returns the total message length (header plus payload). The only
// failure is a nil target. FillHeader does not validate the semantic
// range of the immediates; that is the emulator's responsibility.
func FillHeader(h *Header, cat Category, tag uint8, rc ReturnCode, opcode Opcode, length uint16, a uint8, b uint32) (int, error) {
	if h == nil {
		return 0, fmt.Errorf("%w: nil header", ErrInvalidArgument)
	}
	*h = Header{
		Category:   cat,
		Tag:        tag,
		ReturnCode: rc,
		Opcode:     opcode,
		A:          a,
		Length:     length,
		B:          b,
	}
	return HeaderSize + int(length), nil
}
