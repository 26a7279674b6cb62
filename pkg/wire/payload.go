package wire

// Payload is the decoded body of a message. The set of implementations
// is closed: NoPayload and DeviceList. The codec dispatches on Kind,
// and the sealed method keeps external packages from adding cases the
// codec cannot serialize.
type Payload interface {
	// Kind returns the object kind this payload serializes as.
	Kind() ObjectKind

	sealed()
}

// NoPayload is the empty payload carried by opcodes with no body
// (events, connect, disconnect). It encodes to zero bytes.
type NoPayload struct{}

// Kind returns ObjectNone.
func (NoPayload) Kind() ObjectKind { return ObjectNone }

func (NoPayload) sealed() {}

// DeviceList is a device descriptor list payload. The wire form is the
// devices' records back-to-back with no count field; cardinality
// travels out of band in the header's immediate A.
type DeviceList struct {
	Devices []Device
}

// Kind returns ObjectDeviceList.
func (DeviceList) Kind() ObjectKind { return ObjectDeviceList }

func (DeviceList) sealed() {}

// EncodedSize returns the wire size of the list in bytes.
func (l DeviceList) EncodedSize() int {
	n := 0
	for _, d := range l.Devices {
		n += d.EncodedSize()
	}
	return n
}
