// Command emapi-ctl is an interactive console for composing EM API
// messages. Each command builds a message with the wire builders,
// serializes it, hex dumps the wire form, and decodes it back --
// showing exactly what a management client would put on the wire.
//
// Usage:
//
//	emapi-ctl [flags]
//
// Flags:
//
//	-fixtures string      Path to a YAML device fixture file (default: built-in inventory)
//	-protocol-log string  File path for codec event capture (CBOR format)
//	-verbose              Mirror capture events to the console via slog
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jrlabs/emapi-go/pkg/fixture"
	emlog "github.com/jrlabs/emapi-go/pkg/log"
)

var (
	fixtures    = flag.String("fixtures", "", "Path to a YAML device fixture file")
	protocolLog = flag.String("protocol-log", "", "File path for codec event capture (CBOR format)")
	verbose     = flag.Bool("verbose", false, "Mirror capture events to the console via slog")
)

func main() {
	flag.Parse()

	devices := fixture.Default()
	if *fixtures != "" {
		var err error
		devices, err = fixture.Load(*fixtures)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var loggers []emlog.Logger
	if *verbose {
		loggers = append(loggers, emlog.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	if *protocolLog != "" {
		fl, err := emlog.NewFileLogger(*protocolLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open capture file: %v\n", err)
			os.Exit(1)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}

	var logger emlog.Logger = emlog.NoopLogger{}
	switch len(loggers) {
	case 0:
	case 1:
		logger = loggers[0]
	default:
		logger = emlog.NewMultiLogger(loggers...)
	}

	console, err := newConsole(uuid.NewString(), logger, devices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	console.Run()
}
