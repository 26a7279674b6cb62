package log

import (
	"time"

	"github.com/jrlabs/emapi-go/pkg/wire"
)

// MaxEventDataSize is the maximum raw byte count included in an error
// event. Longer buffers are truncated to keep capture files bounded.
const MaxEventDataSize = 4096

// Event is one captured codec operation. CBOR encoding uses integer
// keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the tool run or exchange (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether the codec was encoding or decoding.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (exactly one is set).
	Message *MessageEvent `cbor:"5,keyasint,omitempty"`
	Error   *ErrorEvent   `cbor:"6,keyasint,omitempty"`
}

// Direction indicates which way the codec transformed a message.
type Direction uint8

const (
	// DirectionEncode is an in-memory message becoming wire bytes.
	DirectionEncode Direction = 0
	// DirectionDecode is wire bytes becoming an in-memory message.
	DirectionDecode Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "ENCODE"
	case DirectionDecode:
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a successfully coded message.
	CategoryMessage Category = 0
	// CategoryError indicates a codec failure.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent records the header of a coded message plus its wire
// footprint. Fields mirror wire.Header so a capture stays readable
// without re-decoding raw bytes.
type MessageEvent struct {
	Category    uint8  `cbor:"1,keyasint"` // wire.Category
	Tag         uint8  `cbor:"2,keyasint"`
	ReturnCode  uint8  `cbor:"3,keyasint"`
	Opcode      uint8  `cbor:"4,keyasint"`
	A           uint8  `cbor:"5,keyasint"`
	Length      uint16 `cbor:"6,keyasint"`
	B           uint32 `cbor:"7,keyasint"`
	DeviceCount int    `cbor:"8,keyasint,omitempty"`
	WireSize    int    `cbor:"9,keyasint"`
}

// ErrorEvent records a codec failure with the operation that failed
// and, for decode failures, the offending bytes (truncated at
// MaxEventDataSize).
type ErrorEvent struct {
	Operation string `cbor:"1,keyasint"`
	Message   string `cbor:"2,keyasint"`
	Data      []byte `cbor:"3,keyasint,omitempty"`
	Truncated bool   `cbor:"4,keyasint,omitempty"`
}

// NewMessageEvent builds a message event for a coded message.
func NewMessageEvent(sessionID string, dir Direction, msg *wire.Message, wireSize int) Event {
	deviceCount := 0
	if list, ok := msg.Payload.(wire.DeviceList); ok {
		deviceCount = len(list.Devices)
	}
	h := msg.Header
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: dir,
		Category:  CategoryMessage,
		Message: &MessageEvent{
			Category:    uint8(h.Category),
			Tag:         h.Tag,
			ReturnCode:  uint8(h.ReturnCode),
			Opcode:      uint8(h.Opcode),
			A:           h.A,
			Length:      h.Length,
			B:           h.B,
			DeviceCount: deviceCount,
			WireSize:    wireSize,
		},
	}
}

// NewErrorEvent builds an error event for a failed codec operation.
// data may be nil for encode failures.
func NewErrorEvent(sessionID string, dir Direction, operation string, err error, data []byte) Event {
	truncated := false
	if len(data) > MaxEventDataSize {
		data = data[:MaxEventDataSize]
		truncated = true
	}
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: dir,
		Category:  CategoryError,
		Error: &ErrorEvent{
			Operation: operation,
			Message:   err.Error(),
			Data:      data,
			Truncated: truncated,
		},
	}
}
