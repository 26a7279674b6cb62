package wire

import "fmt"

// Message is a complete EM API message: a header plus the decoded
// payload the header's opcode and category imply. A Message is a
// self-contained value; it shares no state with other messages and no
// codec call retains a reference to it.
type Message struct {
	Header  Header
	Payload Payload
}

// SetPayload attaches p to the message and stamps Header.Length with
// its encoded size.
func (m *Message) SetPayload(p Payload) error {
	if m == nil {
		return fmt.Errorf("%w: nil message", ErrInvalidArgument)
	}
	if p == nil {
		p = NoPayload{}
	}
	size := 0
	if l, ok := p.(DeviceList); ok {
		size = l.EncodedSize()
	}
	if size > MaxPayloadSize {
		return fmt.Errorf("%w: payload %d bytes, max %d", ErrCapacityExceeded, size, MaxPayloadSize)
	}
	m.Payload = p
	m.Header.Length = uint16(size)
	return nil
}

// EncodeMessage serializes a complete message: header followed by
// payload. The header's Length must equal the payload's encoded size
// and the total must not exceed MaxMessageSize. A nil Payload is
// treated as NoPayload.
func EncodeMessage(m *Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil message", ErrInvalidArgument)
	}

	payload := m.Payload
	if payload == nil {
		payload = NoPayload{}
	}
	body, err := EncodePayload(payload.Kind(), payload)
	if err != nil {
		return nil, err
	}
	if len(body) != int(m.Header.Length) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, payload encodes to %d",
			ErrInvalidArgument, m.Header.Length, len(body))
	}
	if HeaderSize+len(body) > MaxMessageSize {
		return nil, fmt.Errorf("%w: message %d bytes, max %d", ErrCapacityExceeded, HeaderSize+len(body), MaxMessageSize)
	}

	buf := make([]byte, 0, HeaderSize+len(body))
	buf = append(buf, m.Header.Encode()...)
	return append(buf, body...), nil
}

// DecodeMessage deserializes a complete message. The payload kind is
// resolved from the header's opcode and category, and the device list
// cardinality is taken from the header's immediate A, per the EM API
// convention. The buffer must contain at least the declared payload
// length after the header; bytes beyond it are ignored, but the
// declared payload itself must decode completely.
func DecodeMessage(data []byte) (*Message, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	if int(h.Length) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload %d bytes, max %d", ErrCapacityExceeded, h.Length, MaxPayloadSize)
	}
	body := data[HeaderSize:]
	if len(body) < int(h.Length) {
		return nil, fmt.Errorf("%w: header declares %d payload bytes, have %d", ErrTruncated, h.Length, len(body))
	}
	body = body[:h.Length]

	kind := ShapeOf(h)
	count := 0
	if kind == ObjectDeviceList {
		count = int(h.A) // number of devices returned, by convention
	}
	payload, consumed, err := DecodePayload(kind, body, count)
	if err != nil {
		return nil, err
	}
	if consumed != len(body) {
		return nil, fmt.Errorf("%w: payload declares %d bytes, decoded %d", ErrInvalidArgument, len(body), consumed)
	}
	return &Message{Header: h, Payload: payload}, nil
}
