package wire

import "fmt"

// EncodePayload serializes a payload value as the given object kind.
// The kind must be in the closed set and must match the payload's own
// kind; mismatches are rejected before any bytes are produced.
// ObjectHeader is a header-codec concern (see Header.Encode) and is
// not a message payload.
func EncodePayload(kind ObjectKind, p Payload) ([]byte, error) {
	if !kind.IsValid() || kind == ObjectHeader {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: nil payload", ErrInvalidArgument)
	}
	if p.Kind() != kind {
		return nil, fmt.Errorf("%w: payload is %s, want %s", ErrInvalidArgument, p.Kind(), kind)
	}

	switch p := p.(type) {
	case NoPayload:
		return []byte{}, nil

	case DeviceList:
		if len(p.Devices) > MaxDeviceListLen {
			return nil, fmt.Errorf("%w: %d devices, max %d", ErrCapacityExceeded, len(p.Devices), MaxDeviceListLen)
		}
		buf := make([]byte, 0, p.EncodedSize())
		var err error
		for _, d := range p.Devices {
			if buf, err = d.appendWire(buf); err != nil {
				return nil, err
			}
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// DecodePayload decodes count records of the given kind from the front
// of data and returns the payload plus the number of bytes consumed.
//
// A negative count means the caller has no count hint; exactly one
// record is assumed. The hint normally comes from the header's
// immediate A -- the wire format itself carries no record count.
// Every record's declared length is validated against the remaining
// input before it is read; a short buffer yields ErrTruncated and no
// partial output.
func DecodePayload(kind ObjectKind, data []byte, count int) (Payload, int, error) {
	if !kind.IsValid() || kind == ObjectHeader {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	switch kind {
	case ObjectNone:
		return NoPayload{}, 0, nil

	case ObjectDeviceList:
		if count < 0 {
			count = 1
		}
		if count > MaxDeviceListLen {
			return nil, 0, fmt.Errorf("%w: %d devices, max %d", ErrCapacityExceeded, count, MaxDeviceListLen)
		}
		devices := make([]Device, 0, count)
		consumed := 0
		for i := 0; i < count; i++ {
			d, n, err := decodeDevice(data[consumed:])
			if err != nil {
				return nil, 0, fmt.Errorf("device %d: %w", i, err)
			}
			devices = append(devices, d)
			consumed += n
		}
		return DeviceList{Devices: devices}, consumed, nil
	}

	return nil, 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
}
