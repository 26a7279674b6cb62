// Package fixture loads sample device inventories from YAML files for
// the demonstration tools. A fixture stands in for the emulator side
// of the protocol: it supplies the device lists the tools encode into
// List Devices responses.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jrlabs/emapi-go/pkg/wire"
)

// yamlFixture represents the YAML structure of a fixture file.
type yamlFixture struct {
	Devices []yamlDevice `yaml:"devices"`
}

// yamlDevice represents one device entry in YAML format.
type yamlDevice struct {
	ID   uint8  `yaml:"id"`
	Name string `yaml:"name"`
}

// Load reads a device inventory from a YAML fixture file. Entries are
// validated against the codec capacity limits so a loaded inventory is
// always encodable.
func Load(path string) ([]wire.Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

// Parse parses a device inventory from YAML bytes.
func Parse(data []byte) ([]wire.Device, error) {
	var y yamlFixture
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(y.Devices) > wire.MaxDeviceListLen {
		return nil, fmt.Errorf("fixture has %d devices, max %d", len(y.Devices), wire.MaxDeviceListLen)
	}

	devices := make([]wire.Device, 0, len(y.Devices))
	for i, d := range y.Devices {
		if len(d.Name) > wire.MaxDeviceNameLen {
			return nil, fmt.Errorf("device %d: name %q is %d bytes, max %d", i, d.Name, len(d.Name), wire.MaxDeviceNameLen)
		}
		devices = append(devices, wire.Device{ID: d.ID, Name: d.Name})
	}
	return devices, nil
}

// Default returns the built-in sample inventory used when no fixture
// file is given.
func Default() []wire.Device {
	return []wire.Device{
		{ID: 0, Name: "cxl-mem0"},
		{ID: 1, Name: "cxl-mem1"},
		{ID: 2, Name: "cxl-switch0"},
	}
}
