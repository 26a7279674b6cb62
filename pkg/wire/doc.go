// Package wire defines the binary wire format for the EM API, the
// control-plane protocol a management client uses to enumerate,
// connect, and disconnect virtual devices exposed by an emulator.
//
// Every message is a fixed 12-byte header followed by an optional
// payload. All multi-byte integers are little-endian. The header
// carries the opcode, a caller-assigned tag for request/response
// correlation, two opcode-specific immediate values, and the payload
// length in bytes.
//
// # Wire Layout
//
//	offset 0      (ver:4 | category:4)
//	offset 1      tag
//	offset 2      return code
//	offset 3      opcode
//	offset 4      immediate A
//	offset 5      reserved (zero)
//	offset 6-7    payload length (uint16 LE)
//	offset 8-11   immediate B (uint32 LE)
//	offset 12..   payload
//
// # Payload Shapes
//
// The payload shape is determined by the header's opcode and category,
// not by the payload bytes themselves; RequestShape and ResponseShape
// perform that lookup. The only non-empty shape today is the device
// list: a back-to-back sequence of [id][nameLen][name] records. The
// wire format carries no record count of its own -- by convention the
// count travels in the header's immediate A, and decoders must be told
// how many records to expect.
//
// # Purity
//
// The codec is a pure, stateless transformation between the in-memory
// Message value and its encoding. Transport, sessions, and
// authentication are the caller's concern.
package wire
