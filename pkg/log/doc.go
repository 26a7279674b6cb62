// Package log provides structured event capture for the EM API codec.
//
// This package defines the Logger interface and Event types for
// recording every encode and decode a tool performs, producing a
// machine-readable trace of the wire traffic a management client
// exchanges with the emulator. It is separate from operational logging
// (slog): a capture file replays exactly which messages were built and
// what bytes they became.
//
// # Basic Usage
//
// Tools configure capture by providing a Logger implementation:
//
//	// For development: events on the console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: CBOR event stream in a file
//	logger, _ := log.NewFileLogger("session.elog")
//
//	// Both at once
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Capture files are a raw concatenation of CBOR-encoded events with
// integer keys, conventionally with an .elog extension. Reader streams
// them back, optionally filtered.
package log
