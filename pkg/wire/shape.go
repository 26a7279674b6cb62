package wire

// RequestShape returns the object kind expected in the request payload
// of an opcode. It is total: unrecognized opcodes map to ObjectNone.
// None of the defined operations carry a request payload; request
// parameters travel in the header immediates.
func RequestShape(o Opcode) ObjectKind {
	return ObjectNone
}

// ResponseShape returns the object kind expected in the response
// payload of an opcode. It is total: unrecognized opcodes map to
// ObjectNone.
func ResponseShape(o Opcode) ObjectKind {
	switch o {
	case OpListDevices:
		return ObjectDeviceList
	default:
		return ObjectNone
	}
}

// ShapeOf returns the payload kind implied by a header: the response
// shape for response messages, the request shape otherwise. This is
// what a generic receive path uses to decode a payload without the
// caller pre-declaring the expected kind.
func ShapeOf(h Header) ObjectKind {
	if h.Category == CategoryResponse {
		return ResponseShape(h.Opcode)
	}
	return RequestShape(h.Opcode)
}
