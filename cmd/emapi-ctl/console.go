package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jrlabs/emapi-go/pkg/inspect"
	emlog "github.com/jrlabs/emapi-go/pkg/log"
	"github.com/jrlabs/emapi-go/pkg/wire"
)

// console is the interactive command loop. It holds the capture
// session, the configured logger, and the device inventory used to
// stage List Devices responses.
type console struct {
	session string
	logger  emlog.Logger
	devices []wire.Device
	tag     uint8
	rl      *readline.Instance
}

func newConsole(session string, logger emlog.Logger, devices []wire.Device) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "emapi> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &console{
		session: session,
		logger:  logger,
		devices: devices,
		rl:      rl,
	}, nil
}

// Stdout returns a writer that coordinates with the readline prompt.
func (c *console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *console) Run() {
	defer c.rl.Close()

	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "list", "l":
			c.cmdList(args)

		case "connect", "c":
			c.cmdConnect(args)

		case "disconnect", "d":
			c.cmdDisconnect(args)

		case "event", "e":
			c.cmdEvent(args)

		case "decode":
			c.cmdDecode(args)

		case "strings":
			c.cmdStrings()

		case "devices":
			for _, d := range c.devices {
				fmt.Fprintln(c.Stdout(), inspect.FormatDevice(d))
			}

		case "exit", "quit", "q":
			fmt.Fprintln(c.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(c.Stdout(), "Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprint(c.Stdout(), `Commands:
  list [num [start]]        Build a List Devices request and its sample response
  connect <ppid> <dev>      Build a Connect Device request
  disconnect <ppid> [all]   Build a Disconnect Device request
  event [a [b]]             Build an event notification
  decode <hex>              Decode a hex-encoded wire message
  strings                   Print the name registries
  devices                   Print the staged device inventory
  help                      Show this help
  exit                      Quit
`)
}

// cmdList builds a List Devices request and, since there is no live
// emulator behind the console, the response it would produce from the
// staged inventory.
func (c *console) cmdList(args []string) {
	num := uint8(0)
	start := uint32(0)
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			fmt.Fprintf(c.Stdout(), "bad num: %v\n", err)
			return
		}
		num = uint8(v)
	}
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			fmt.Fprintf(c.Stdout(), "bad start: %v\n", err)
			return
		}
		start = uint32(v)
	}

	var req wire.Message
	if err := wire.FillListDevices(&req, num, start); err != nil {
		fmt.Fprintf(c.Stdout(), "build failed: %v\n", err)
		return
	}
	req.Header.Tag = c.nextTag()
	c.show(&req)

	// Stage the response the emulator would send back.
	selected := c.devices
	if int(start) < len(selected) {
		selected = selected[start:]
	} else {
		selected = nil
	}
	if num > 0 && int(num) < len(selected) {
		selected = selected[:num]
	}

	rsp := wire.Message{
		Header: wire.Header{
			Category:   wire.CategoryResponse,
			Tag:        req.Header.Tag,
			ReturnCode: wire.RcSuccess,
			Opcode:     wire.OpListDevices,
			A:          uint8(len(selected)),
			B:          uint32(len(c.devices)),
		},
	}
	if err := rsp.SetPayload(wire.DeviceList{Devices: selected}); err != nil {
		fmt.Fprintf(c.Stdout(), "build failed: %v\n", err)
		return
	}
	c.show(&rsp)
}

func (c *console) cmdConnect(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.Stdout(), "usage: connect <ppid> <dev>")
		return
	}
	ppid, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		fmt.Fprintf(c.Stdout(), "bad ppid: %v\n", err)
		return
	}
	dev, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		fmt.Fprintf(c.Stdout(), "bad dev: %v\n", err)
		return
	}

	var msg wire.Message
	if err := wire.FillConnectDevice(&msg, uint8(ppid), uint32(dev)); err != nil {
		fmt.Fprintf(c.Stdout(), "build failed: %v\n", err)
		return
	}
	msg.Header.Tag = c.nextTag()
	c.show(&msg)
}

func (c *console) cmdDisconnect(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.Stdout(), "usage: disconnect <ppid> [all]")
		return
	}
	ppid, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		fmt.Fprintf(c.Stdout(), "bad ppid: %v\n", err)
		return
	}
	all := len(args) > 1 && strings.EqualFold(args[1], "all")

	var msg wire.Message
	if err := wire.FillDisconnectDevice(&msg, uint8(ppid), all); err != nil {
		fmt.Fprintf(c.Stdout(), "build failed: %v\n", err)
		return
	}
	msg.Header.Tag = c.nextTag()
	c.show(&msg)
}

func (c *console) cmdEvent(args []string) {
	a := uint8(0)
	b := uint32(0)
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			fmt.Fprintf(c.Stdout(), "bad a: %v\n", err)
			return
		}
		a = uint8(v)
	}
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			fmt.Fprintf(c.Stdout(), "bad b: %v\n", err)
			return
		}
		b = uint32(v)
	}

	var msg wire.Message
	if err := wire.FillEvent(&msg, a, b); err != nil {
		fmt.Fprintf(c.Stdout(), "build failed: %v\n", err)
		return
	}
	c.show(&msg)
}

// cmdDecode decodes a hex string as a complete wire message.
func (c *console) cmdDecode(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.Stdout(), "usage: decode <hex>")
		return
	}
	data, err := hex.DecodeString(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(c.Stdout(), "bad hex: %v\n", err)
		return
	}

	msg, err := wire.DecodeMessage(data)
	if err != nil {
		c.logger.Log(emlog.NewErrorEvent(c.session, emlog.DirectionDecode, "DecodeMessage", err, data))
		fmt.Fprintf(c.Stdout(), "decode failed: %v\n", err)
		return
	}
	c.logger.Log(emlog.NewMessageEvent(c.session, emlog.DirectionDecode, msg, len(data)))
	fmt.Fprint(c.Stdout(), inspect.FormatMessage(msg))
}

func (c *console) cmdStrings() {
	out := c.Stdout()
	for o := wire.Opcode(0); o <= wire.OpDisconnectDevice; o++ {
		name, _ := wire.OpcodeName(o)
		fmt.Fprintf(out, "opcode 0x%02x: %s\n", uint8(o), name)
	}
	for r := wire.ReturnCode(0); r <= wire.RcBusy; r++ {
		name, _ := wire.ReturnCodeName(r)
		fmt.Fprintf(out, "rc     0x%02x: %s\n", uint8(r), name)
	}
}

// show serializes a message, hex dumps the wire form, round-trips it,
// and pretty-prints the result.
func (c *console) show(msg *wire.Message) {
	out := c.Stdout()
	fmt.Fprint(out, inspect.FormatMessage(msg))

	buf, err := wire.EncodeMessage(msg)
	if err != nil {
		c.logger.Log(emlog.NewErrorEvent(c.session, emlog.DirectionEncode, "EncodeMessage", err, nil))
		fmt.Fprintf(out, "encode failed: %v\n", err)
		return
	}
	c.logger.Log(emlog.NewMessageEvent(c.session, emlog.DirectionEncode, msg, len(buf)))
	fmt.Fprint(out, inspect.HexDump(buf))

	if _, err := wire.DecodeMessage(buf); err != nil {
		c.logger.Log(emlog.NewErrorEvent(c.session, emlog.DirectionDecode, "DecodeMessage", err, buf))
		fmt.Fprintf(out, "round trip failed: %v\n", err)
		return
	}
	fmt.Fprintln(out)
}

// nextTag hands out correlation tags, skipping zero so request tags
// stay visually distinct from zeroed headers.
func (c *console) nextTag() uint8 {
	c.tag++
	if c.tag == 0 {
		c.tag = 1
	}
	return c.tag
}
