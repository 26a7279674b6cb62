package wire

import "fmt"

// Message builders, one per defined opcode. Each zeroes the target's
// header, stamps the opcode and the two opcode-specific immediates,
// and leaves payload construction to the caller (no defined opcode
// carries a request payload). Builders do not validate the semantic
// range of the immediates -- device and port indices are checked by
// the emulator, not here. The only failure is a nil target.

// FillListDevices prepares a List Devices request. num is the number
// of devices requested (0 = all); start is the device number to start
// the enumeration at.
func FillListDevices(m *Message, num uint8, start uint32) error {
	return fill(m, OpListDevices, num, start)
}

// FillConnectDevice prepares a Connect Device request. ppid is the
// port to connect to; dev is the device id.
func FillConnectDevice(m *Message, ppid uint8, dev uint32) error {
	return fill(m, OpConnectDevice, ppid, dev)
}

// FillDisconnectDevice prepares a Disconnect Device request. ppid is
// the port to disconnect; all disconnects every port instead.
func FillDisconnectDevice(m *Message, ppid uint8, all bool) error {
	var b uint32
	if all {
		b = 1
	}
	return fill(m, OpDisconnectDevice, ppid, b)
}

// FillEvent prepares an event notification. The meaning of a and b is
// event-specific.
func FillEvent(m *Message, a uint8, b uint32) error {
	if err := fill(m, OpEvent, a, b); err != nil {
		return err
	}
	m.Header.Category = CategoryEvent
	return nil
}

func fill(m *Message, opcode Opcode, a uint8, b uint32) error {
	if m == nil {
		return fmt.Errorf("%w: nil message", ErrInvalidArgument)
	}
	m.Header = Header{Opcode: opcode, A: a, B: b}
	m.Payload = NoPayload{}
	return nil
}
