package wire

import "errors"

// Codec errors. All conditions are local and recoverable; an error
// result means no output was produced.
var (
	// ErrInvalidArgument indicates a nil target or a payload value that
	// does not match the requested object kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKind indicates an object kind outside the closed set.
	ErrUnknownKind = errors.New("unknown object kind")

	// ErrTruncated indicates fewer input bytes than a fixed or
	// declared-length field requires.
	ErrTruncated = errors.New("truncated input")

	// ErrCapacityExceeded indicates a device name longer than
	// MaxDeviceNameLen, a device list longer than MaxDeviceListLen, or
	// a message larger than MaxMessageSize.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
