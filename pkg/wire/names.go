package wire

// Display name tables for the four closed code spaces. The tables are
// immutable after process start and are exposed only through the
// bounds-checked lookup functions below; an out-of-range code reports
// ok=false rather than a name. Codes are append-only: new values may
// be added at the end of a space but existing ones never change.

var categoryNames = [...]string{
	CategoryRequest:  "Request",
	CategoryResponse: "Response",
	CategoryEvent:    "Event",
}

var objectKindNames = [...]string{
	ObjectNone:       "None",
	ObjectHeader:     "Header",
	ObjectDeviceList: "Device List",
}

var opcodeNames = [...]string{
	OpEvent:            "Event Notification",
	OpListDevices:      "List Devices",
	OpConnectDevice:    "Connect Device",
	OpDisconnectDevice: "Disconnect Device",
}

var returnCodeNames = [...]string{
	RcSuccess:             "Success",
	RcBackgroundOpStarted: "Background operation started",
	RcInvalidInput:        "Invalid input",
	RcUnsupported:         "Unsupported",
	RcInternalError:       "Internal error",
	RcBusy:                "Busy",
}

// CategoryName returns the display name for a message category.
// ok is false when the code is outside the registry.
func CategoryName(c Category) (name string, ok bool) {
	if int(c) >= len(categoryNames) {
		return "", false
	}
	return categoryNames[c], true
}

// ObjectKindName returns the display name for an object kind.
// ok is false when the code is outside the registry.
func ObjectKindName(k ObjectKind) (name string, ok bool) {
	if int(k) >= len(objectKindNames) {
		return "", false
	}
	return objectKindNames[k], true
}

// OpcodeName returns the display name for an opcode.
// ok is false when the code is outside the registry.
func OpcodeName(o Opcode) (name string, ok bool) {
	if int(o) >= len(opcodeNames) {
		return "", false
	}
	return opcodeNames[o], true
}

// ReturnCodeName returns the display name for a return code.
// ok is false when the code is outside the registry.
func ReturnCodeName(r ReturnCode) (name string, ok bool) {
	if int(r) >= len(returnCodeNames) {
		return "", false
	}
	return returnCodeNames[r], true
}
