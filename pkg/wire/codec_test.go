package wire

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestDeviceListRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		devices []Device
	}{
		{
			name:    "empty list",
			devices: []Device{},
		},
		{
			name:    "single device",
			devices: []Device{{ID: 0x21, Name: "Device name"}},
		},
		{
			name: "mixed names",
			devices: []Device{
				{ID: 0, Name: "cxl-mem0"},
				{ID: 1, Name: ""},
				{ID: 2, Name: strings.Repeat("n", MaxDeviceNameLen)},
			},
		},
		{
			name: "full list",
			devices: func() []Device {
				devs := make([]Device, MaxDeviceListLen)
				for i := range devs {
					devs[i] = Device{ID: uint8(i), Name: fmt.Sprintf("dev%02d", i)}
				}
				return devs
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodePayload(ObjectDeviceList, DeviceList{Devices: tt.devices})
			if err != nil {
				t.Fatalf("EncodePayload failed: %v", err)
			}

			decoded, consumed, err := DecodePayload(ObjectDeviceList, data, len(tt.devices))
			if err != nil {
				t.Fatalf("DecodePayload failed: %v", err)
			}
			if consumed != len(data) {
				t.Errorf("consumed %d bytes, want %d", consumed, len(data))
			}

			list, ok := decoded.(DeviceList)
			if !ok {
				t.Fatalf("decoded payload is %T, want DeviceList", decoded)
			}
			if !reflect.DeepEqual(list.Devices, tt.devices) {
				t.Errorf("round trip mismatch:\n got  %v\n want %v", list.Devices, tt.devices)
			}
		})
	}
}

func TestDeviceEmptyNameBoundary(t *testing.T) {
	data, err := EncodePayload(ObjectDeviceList, DeviceList{Devices: []Device{{ID: 0x07}}})
	if err != nil {
		t.Fatalf("EncodePayload failed: %v", err)
	}
	if !bytes.Equal(data, []byte{0x07, 0x00}) {
		t.Fatalf("empty name encoding = % x, want 07 00", data)
	}

	decoded, consumed, err := DecodePayload(ObjectDeviceList, data, 1)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if consumed != 2 {
		t.Errorf("consumed %d bytes, want 2", consumed)
	}
	if dev := decoded.(DeviceList).Devices[0]; dev.Name != "" || dev.ID != 0x07 {
		t.Errorf("decoded device = %+v, want id 0x07 with empty name", dev)
	}
}

func TestDecodeDeviceListNoCountHint(t *testing.T) {
	// Two records on the wire, but with no hint exactly one is assumed.
	data := []byte{1, 3, 'o', 'n', 'e', 2, 3, 't', 'w', 'o'}

	decoded, consumed, err := DecodePayload(ObjectDeviceList, data, -1)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if consumed != 5 {
		t.Errorf("consumed %d bytes, want 5", consumed)
	}
	list := decoded.(DeviceList)
	if len(list.Devices) != 1 || list.Devices[0].Name != "one" {
		t.Errorf("decoded %v, want single device named %q", list.Devices, "one")
	}
}

func TestDecodeDeviceListTruncated(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		count int
	}{
		{
			name:  "empty buffer",
			data:  []byte{},
			count: 1,
		},
		{
			name:  "id without length",
			data:  []byte{0x01},
			count: 1,
		},
		{
			name:  "name shorter than declared",
			data:  []byte{0x01, 0x05, 'a', 'b'},
			count: 1,
		},
		{
			name:  "second record truncated",
			data:  []byte{0x01, 0x02, 'a', 'b', 0x02, 0x08, 'x'},
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodePayload(ObjectDeviceList, tt.data, tt.count); !errors.Is(err, ErrTruncated) {
				t.Errorf("got %v, want ErrTruncated", err)
			}
		})
	}
}

func TestCodecCapacityLimits(t *testing.T) {
	t.Run("encode long name", func(t *testing.T) {
		long := DeviceList{Devices: []Device{{Name: strings.Repeat("x", MaxDeviceNameLen+1)}}}
		if _, err := EncodePayload(ObjectDeviceList, long); !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("got %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("encode oversized list", func(t *testing.T) {
		list := DeviceList{Devices: make([]Device, MaxDeviceListLen+1)}
		if _, err := EncodePayload(ObjectDeviceList, list); !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("got %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("decode declared name over capacity", func(t *testing.T) {
		data := make([]byte, 2+MaxDeviceNameLen+1)
		data[1] = MaxDeviceNameLen + 1
		if _, _, err := DecodePayload(ObjectDeviceList, data, 1); !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("got %v, want ErrCapacityExceeded", err)
		}
	})

	t.Run("decode oversized count", func(t *testing.T) {
		if _, _, err := DecodePayload(ObjectDeviceList, nil, MaxDeviceListLen+1); !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("got %v, want ErrCapacityExceeded", err)
		}
	})
}

func TestEncodePayloadNone(t *testing.T) {
	data, err := EncodePayload(ObjectNone, NoPayload{})
	if err != nil {
		t.Fatalf("EncodePayload failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("None encoded to %d bytes, want 0", len(data))
	}

	// None decodes zero bytes unconditionally, whatever the input.
	decoded, consumed, err := DecodePayload(ObjectNone, []byte{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if consumed != 0 {
		t.Errorf("consumed %d bytes, want 0", consumed)
	}
	if _, ok := decoded.(NoPayload); !ok {
		t.Errorf("decoded payload is %T, want NoPayload", decoded)
	}
}

func TestCodecRejectsBadKind(t *testing.T) {
	for _, kind := range []ObjectKind{ObjectHeader, ObjectKind(3), ObjectKind(0xFF)} {
		if _, err := EncodePayload(kind, NoPayload{}); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("EncodePayload(%d): got %v, want ErrUnknownKind", kind, err)
		}
		if _, _, err := DecodePayload(kind, nil, 0); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("DecodePayload(%d): got %v, want ErrUnknownKind", kind, err)
		}
	}
}

func TestEncodePayloadKindMismatch(t *testing.T) {
	if _, err := EncodePayload(ObjectDeviceList, NoPayload{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if _, err := EncodePayload(ObjectNone, DeviceList{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if _, err := EncodePayload(ObjectNone, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil payload: got %v, want ErrInvalidArgument", err)
	}
}
