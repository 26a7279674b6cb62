package wire

// Category classifies a message as a request, a response, or an
// unsolicited event notification. It occupies the low 4 bits of the
// first header byte.
type Category uint8

const (
	// CategoryRequest is a message from the management client to the
	// emulator.
	CategoryRequest Category = 0

	// CategoryResponse is the emulator's reply, matched to its request
	// by the header tag.
	CategoryResponse Category = 1

	// CategoryEvent is an unsolicited notification from the emulator.
	CategoryEvent Category = 2
)

// String returns the category name.
func (c Category) String() string {
	if name, ok := CategoryName(c); ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid returns true if the category is within the closed set.
func (c Category) IsValid() bool {
	return c <= CategoryEvent
}

// ObjectKind tags the payload shape a message carries. It exists for
// serialization dispatch; the wire never carries the kind itself.
type ObjectKind uint8

const (
	// ObjectNone is the empty payload.
	ObjectNone ObjectKind = 0

	// ObjectHeader is the 12-byte message header.
	ObjectHeader ObjectKind = 1

	// ObjectDeviceList is a sequence of device descriptor records.
	ObjectDeviceList ObjectKind = 2
)

// String returns the object kind name.
func (k ObjectKind) String() string {
	if name, ok := ObjectKindName(k); ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid returns true if the kind is within the closed set.
func (k ObjectKind) IsValid() bool {
	return k <= ObjectDeviceList
}

// Opcode selects the operation a message performs and, together with
// the category, determines the payload shape.
type Opcode uint8

const (
	// OpEvent is an event notification. Immediates are event-specific.
	OpEvent Opcode = 0x00

	// OpListDevices enumerates devices. Request: A = number requested
	// (0 = all), B = device number to start at. Response: A = number
	// returned, B = total devices, payload = device list.
	OpListDevices Opcode = 0x01

	// OpConnectDevice connects a device to a port. Request: A = port id
	// (PPID), B = device id.
	OpConnectDevice Opcode = 0x02

	// OpDisconnectDevice disconnects a port. Request: A = port id,
	// B = 1 to disconnect all ports, 0 to disconnect only port A.
	OpDisconnectDevice Opcode = 0x03
)

// String returns the opcode display name.
func (o Opcode) String() string {
	if name, ok := OpcodeName(o); ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid returns true if the opcode is within the closed set.
func (o Opcode) IsValid() bool {
	return o <= OpDisconnectDevice
}

// ReturnCode is the result code of a response message. It is
// meaningful only when the category is CategoryResponse.
type ReturnCode uint8

const (
	// RcSuccess indicates the operation completed successfully.
	RcSuccess ReturnCode = 0

	// RcBackgroundOpStarted indicates the operation was accepted and
	// continues in the background.
	RcBackgroundOpStarted ReturnCode = 1

	// RcInvalidInput indicates a request parameter was out of range.
	RcInvalidInput ReturnCode = 2

	// RcUnsupported indicates the emulator does not implement the
	// requested operation.
	RcUnsupported ReturnCode = 3

	// RcInternalError indicates the emulator failed internally.
	RcInternalError ReturnCode = 4

	// RcBusy indicates the emulator cannot service the request now;
	// try again later.
	RcBusy ReturnCode = 5
)

// String returns the return code display name.
func (r ReturnCode) String() string {
	if name, ok := ReturnCodeName(r); ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid returns true if the return code is within the closed set.
func (r ReturnCode) IsValid() bool {
	return r <= RcBusy
}

// IsSuccess returns true if the return code indicates success.
func (r ReturnCode) IsSuccess() bool {
	return r == RcSuccess
}
