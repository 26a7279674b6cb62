// Command emapi-test is a demonstration testbench for the EM API codec.
//
// It prints sample messages, serializes them to their wire form, hex
// dumps the buffers, and round-trips them back through the decoder --
// the same exercise a management client performs against the emulator,
// minus the transport.
//
// Usage:
//
//	emapi-test [flags]
//
// Flags:
//
//	-test string          Demo to run: strings, hdr, dev, msg, all (default "all")
//	-fixtures string      Path to a YAML device fixture file (default: built-in inventory)
//	-protocol-log string  File path for codec event capture (CBOR format)
//	-dump string          Replay a capture file instead of running demos
//	-verbose              Mirror capture events to the console via slog
//
// Examples:
//
//	# Run every demo with the built-in device inventory
//	emapi-test
//
//	# Round-trip a device list loaded from a fixture, capturing events
//	emapi-test -test dev -fixtures devices.yaml -protocol-log session.elog
//
//	# Replay a previous capture
//	emapi-test -dump session.elog
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jrlabs/emapi-go/pkg/fixture"
	"github.com/jrlabs/emapi-go/pkg/inspect"
	emlog "github.com/jrlabs/emapi-go/pkg/log"
	"github.com/jrlabs/emapi-go/pkg/wire"
)

var (
	test        = flag.String("test", "all", "Demo to run: strings, hdr, dev, msg, all")
	fixtures    = flag.String("fixtures", "", "Path to a YAML device fixture file")
	protocolLog = flag.String("protocol-log", "", "File path for codec event capture (CBOR format)")
	dump        = flag.String("dump", "", "Replay a capture file instead of running demos")
	verbose     = flag.Bool("verbose", false, "Mirror capture events to the console via slog")
)

func main() {
	flag.Parse()

	if *dump != "" {
		if err := dumpCapture(*dump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, cleanup, err := buildLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	devices := fixture.Default()
	if *fixtures != "" {
		devices, err = fixture.Load(*fixtures)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	tb := &testbench{
		session: uuid.NewString(),
		logger:  logger,
		devices: devices,
	}

	var ok bool
	switch *test {
	case "strings":
		tb.printStrings()
		ok = true
	case "hdr":
		ok = tb.verifyHeader()
	case "dev":
		ok = tb.verifyDevices()
	case "msg":
		ok = tb.verifyMessage()
	case "all":
		tb.printStrings()
		ok = tb.verifyHeader()
		ok = tb.verifyDevices() && ok
		ok = tb.verifyMessage() && ok
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown test %q (want strings, hdr, dev, msg, all)\n", *test)
		os.Exit(2)
	}

	if !ok {
		os.Exit(1)
	}
}

// buildLogger assembles the capture logger from the flags.
func buildLogger() (emlog.Logger, func(), error) {
	var loggers []emlog.Logger
	cleanup := func() {}

	if *verbose {
		loggers = append(loggers, emlog.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	if *protocolLog != "" {
		fl, err := emlog.NewFileLogger(*protocolLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open capture file: %w", err)
		}
		loggers = append(loggers, fl)
		cleanup = func() { fl.Close() }
	}

	switch len(loggers) {
	case 0:
		return emlog.NoopLogger{}, cleanup, nil
	case 1:
		return loggers[0], cleanup, nil
	default:
		return emlog.NewMultiLogger(loggers...), cleanup, nil
	}
}

type testbench struct {
	session string
	logger  emlog.Logger
	devices []wire.Device
}

// printStrings dumps the four name registries, including the first
// out-of-range code of each space.
func (tb *testbench) printStrings() {
	fmt.Println("Registries:")
	for c := wire.Category(0); c <= wire.CategoryEvent+1; c++ {
		name, ok := wire.CategoryName(c)
		fmt.Printf("  category %d: %s\n", c, nameOr(name, ok))
	}
	for k := wire.ObjectKind(0); k <= wire.ObjectDeviceList+1; k++ {
		name, ok := wire.ObjectKindName(k)
		fmt.Printf("  object   %d: %s\n", k, nameOr(name, ok))
	}
	for o := wire.Opcode(0); o <= wire.OpDisconnectDevice+1; o++ {
		name, ok := wire.OpcodeName(o)
		fmt.Printf("  opcode   %d: %s\n", o, nameOr(name, ok))
	}
	for r := wire.ReturnCode(0); r <= wire.RcBusy+1; r++ {
		name, ok := wire.ReturnCodeName(r)
		fmt.Printf("  rc       %d: %s\n", r, nameOr(name, ok))
	}
	fmt.Println()
}

// verifyHeader round-trips the reference header sample.
func (tb *testbench) verifyHeader() bool {
	fmt.Println("TEST hdr: header round trip")

	hdr := wire.Header{
		Category:   wire.CategoryResponse,
		Tag:        0x42,
		ReturnCode: wire.ReturnCode(0xCD),
		Opcode:     wire.Opcode(0xAB),
		A:          0x23,
		Length:     0x1FFF,
		B:          0x12345678,
	}
	fmt.Print(inspect.FormatHeader(hdr))

	buf := hdr.Encode()
	fmt.Print(inspect.HexDump(buf))

	decoded, err := wire.DecodeHeader(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decode failed: %v\n", err)
		return false
	}
	fmt.Print(inspect.FormatHeader(decoded))

	if decoded != hdr {
		fmt.Println("FAIL: round trip mismatch")
		return false
	}
	fmt.Println("PASS")
	fmt.Println()
	return true
}

// verifyDevices round-trips the device inventory as a raw payload.
func (tb *testbench) verifyDevices() bool {
	fmt.Printf("TEST dev: device list round trip (%d devices)\n", len(tb.devices))

	for _, d := range tb.devices {
		fmt.Println(inspect.FormatDevice(d))
	}

	buf, err := wire.EncodePayload(wire.ObjectDeviceList, wire.DeviceList{Devices: tb.devices})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode failed: %v\n", err)
		return false
	}
	fmt.Print(inspect.HexDump(buf))

	decoded, consumed, err := wire.DecodePayload(wire.ObjectDeviceList, buf, len(tb.devices))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decode failed: %v\n", err)
		return false
	}
	fmt.Printf("consumed %d of %d bytes\n", consumed, len(buf))

	for _, d := range decoded.(wire.DeviceList).Devices {
		fmt.Println(inspect.FormatDevice(d))
	}
	fmt.Println("PASS")
	fmt.Println()
	return true
}

// verifyMessage builds a full request/response exchange and round-trips
// both messages, logging each codec operation.
func (tb *testbench) verifyMessage() bool {
	fmt.Println("TEST msg: message round trip")

	var req wire.Message
	if err := wire.FillListDevices(&req, 0, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	req.Header.Tag = 0x01
	if !tb.roundTrip(&req) {
		return false
	}

	rsp := wire.Message{
		Header: wire.Header{
			Category:   wire.CategoryResponse,
			Tag:        0x01,
			ReturnCode: wire.RcSuccess,
			Opcode:     wire.OpListDevices,
			A:          uint8(len(tb.devices)),
			B:          uint32(len(tb.devices)),
		},
	}
	if err := rsp.SetPayload(wire.DeviceList{Devices: tb.devices}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	if !tb.roundTrip(&rsp) {
		return false
	}

	fmt.Println("PASS")
	fmt.Println()
	return true
}

// roundTrip encodes a message, dumps the wire form, and decodes it
// back, emitting a capture event per direction.
func (tb *testbench) roundTrip(msg *wire.Message) bool {
	fmt.Print(inspect.FormatMessage(msg))

	buf, err := wire.EncodeMessage(msg)
	if err != nil {
		tb.logger.Log(emlog.NewErrorEvent(tb.session, emlog.DirectionEncode, "EncodeMessage", err, nil))
		fmt.Fprintf(os.Stderr, "Error: encode failed: %v\n", err)
		return false
	}
	tb.logger.Log(emlog.NewMessageEvent(tb.session, emlog.DirectionEncode, msg, len(buf)))
	fmt.Print(inspect.HexDump(buf))

	decoded, err := wire.DecodeMessage(buf)
	if err != nil {
		tb.logger.Log(emlog.NewErrorEvent(tb.session, emlog.DirectionDecode, "DecodeMessage", err, buf))
		fmt.Fprintf(os.Stderr, "Error: decode failed: %v\n", err)
		return false
	}
	tb.logger.Log(emlog.NewMessageEvent(tb.session, emlog.DirectionDecode, decoded, len(buf)))
	fmt.Print(inspect.FormatMessage(decoded))
	return true
}

// dumpCapture replays a capture file to the console.
func dumpCapture(path string) error {
	reader, err := emlog.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case event.Message != nil:
			m := event.Message
			fmt.Printf("%s %s %-7s tag=0x%02x %s (%d bytes",
				event.Timestamp.Format("15:04:05.000000"),
				event.Direction,
				wire.Category(m.Category),
				m.Tag,
				wire.Opcode(m.Opcode),
				m.WireSize)
			if m.DeviceCount > 0 {
				fmt.Printf(", %d devices", m.DeviceCount)
			}
			fmt.Println(")")
		case event.Error != nil:
			fmt.Printf("%s %s ERROR %s: %s\n",
				event.Timestamp.Format("15:04:05.000000"),
				event.Direction,
				event.Error.Operation,
				event.Error.Message)
		}
	}
}

func nameOr(name string, ok bool) string {
	if !ok {
		return "(not found)"
	}
	return name
}
