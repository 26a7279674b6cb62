// Package inspect renders EM API messages and wire buffers for the
// console. It is display-only plumbing: nothing here affects codec
// correctness, and the name registries are consulted purely for
// diagnostics.
package inspect

import (
	"fmt"
	"strings"

	"github.com/jrlabs/emapi-go/pkg/wire"
)

// FormatHeader renders a header as a multi-line field dump.
func FormatHeader(h wire.Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Header:\n")
	fmt.Fprintf(&b, "  Version:      0x%02x\n", h.Version)
	fmt.Fprintf(&b, "  Category:     0x%02x %s\n", uint8(h.Category), nameOr(wire.CategoryName(h.Category)))
	fmt.Fprintf(&b, "  Tag:          0x%02x\n", h.Tag)
	fmt.Fprintf(&b, "  Return Code:  0x%02x %s\n", uint8(h.ReturnCode), nameOr(wire.ReturnCodeName(h.ReturnCode)))
	fmt.Fprintf(&b, "  Opcode:       0x%02x %s\n", uint8(h.Opcode), nameOr(wire.OpcodeName(h.Opcode)))
	fmt.Fprintf(&b, "  Immediate A:  0x%02x\n", h.A)
	fmt.Fprintf(&b, "  Length:       0x%04x\n", h.Length)
	fmt.Fprintf(&b, "  Immediate B:  0x%08x\n", h.B)
	return b.String()
}

// FormatDevice renders one device descriptor as "id - name".
func FormatDevice(d wire.Device) string {
	return fmt.Sprintf("%02d - %s", d.ID, d.Name)
}

// FormatMessage renders a complete message: the header followed by the
// payload, one line per device for device lists.
func FormatMessage(m *wire.Message) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(FormatHeader(m.Header))

	if list, ok := m.Payload.(wire.DeviceList); ok {
		fmt.Fprintf(&b, "Devices (%d):\n", len(list.Devices))
		for _, d := range list.Devices {
			fmt.Fprintf(&b, "  %s\n", FormatDevice(d))
		}
	}
	return b.String()
}

// HexDump renders a wire buffer as offset, hex bytes, and ASCII
// columns, 16 bytes per row.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		row := data[off:min(off+16, len(data))]

		fmt.Fprintf(&b, "%04x  ", off)
		for i := 0; i < 16; i++ {
			if i == 8 {
				b.WriteByte(' ')
			}
			if i < len(row) {
				fmt.Fprintf(&b, "%02x ", row[i])
			} else {
				b.WriteString("   ")
			}
		}

		b.WriteString(" |")
		for _, c := range row {
			if c < 0x20 || c > 0x7E {
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteString("|\n")
	}
	return b.String()
}

func nameOr(name string, ok bool) string {
	if !ok {
		return "(not found)"
	}
	return name
}
