package log

import (
	"context"
	"log/slog"

	"github.com/jrlabs/emapi-go/pkg/wire"
)

// SlogAdapter writes capture events to an slog.Logger. Useful during
// development to watch codec traffic on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.String("msg_category", wire.Category(m.Category).String()),
			slog.String("opcode", wire.Opcode(m.Opcode).String()),
			slog.Uint64("tag", uint64(m.Tag)),
			slog.Int("wire_size", m.WireSize),
		)
		if wire.Category(m.Category) == wire.CategoryResponse {
			attrs = append(attrs, slog.String("rc", wire.ReturnCode(m.ReturnCode).String()))
		}
		if m.DeviceCount > 0 {
			attrs = append(attrs, slog.Int("devices", m.DeviceCount))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("operation", event.Error.Operation),
			slog.String("error", event.Error.Message),
		)
		if len(event.Error.Data) > 0 {
			attrs = append(attrs,
				slog.Int("data_len", len(event.Error.Data)),
				slog.Bool("truncated", event.Error.Truncated),
			)
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "emapi", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
