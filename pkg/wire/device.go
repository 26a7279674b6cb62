package wire

import "fmt"

// Device capacity limits.
const (
	// MaxDeviceNameLen is the maximum device name length in bytes.
	MaxDeviceNameLen = 125

	// MaxDeviceListLen is the maximum number of devices in a list.
	MaxDeviceListLen = 64
)

// Device is one device descriptor in a device list payload.
//
// Wire form: [id:1][nameLen:1][name: nameLen bytes]. The name is not
// NUL-terminated on the wire; a zero nameLen denotes an empty name.
type Device struct {
	ID   uint8
	Name string // at most MaxDeviceNameLen bytes
}

// EncodedSize returns the wire size of the descriptor in bytes.
func (d Device) EncodedSize() int {
	return 2 + len(d.Name)
}

// appendWire appends the descriptor's wire form to dst.
func (d Device) appendWire(dst []byte) ([]byte, error) {
	if len(d.Name) > MaxDeviceNameLen {
		return nil, fmt.Errorf("%w: device name %d bytes, max %d", ErrCapacityExceeded, len(d.Name), MaxDeviceNameLen)
	}
	dst = append(dst, d.ID, uint8(len(d.Name)))
	return append(dst, d.Name...), nil
}

// decodeDevice decodes one descriptor from the front of data, checking
// the declared name length against the bytes actually available.
func decodeDevice(data []byte) (Device, int, error) {
	if len(data) < 2 {
		return Device{}, 0, fmt.Errorf("%w: device descriptor needs 2 bytes, have %d", ErrTruncated, len(data))
	}
	id, nameLen := data[0], int(data[1])
	if nameLen > MaxDeviceNameLen {
		return Device{}, 0, fmt.Errorf("%w: device name %d bytes, max %d", ErrCapacityExceeded, nameLen, MaxDeviceNameLen)
	}
	if len(data) < 2+nameLen {
		return Device{}, 0, fmt.Errorf("%w: device name declares %d bytes, have %d", ErrTruncated, nameLen, len(data)-2)
	}
	return Device{ID: id, Name: string(data[2 : 2+nameLen])}, 2 + nameLen, nil
}
