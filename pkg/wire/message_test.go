package wire

import (
	"errors"
	"reflect"
	"testing"
)

func TestShapeResolutionTotality(t *testing.T) {
	tests := []struct {
		opcode   Opcode
		request  ObjectKind
		response ObjectKind
	}{
		{OpEvent, ObjectNone, ObjectNone},
		{OpListDevices, ObjectNone, ObjectDeviceList},
		{OpConnectDevice, ObjectNone, ObjectNone},
		{OpDisconnectDevice, ObjectNone, ObjectNone},
	}

	for _, tt := range tests {
		if got := RequestShape(tt.opcode); got != tt.request {
			t.Errorf("RequestShape(%v) = %v, want %v", tt.opcode, got, tt.request)
		}
		if got := ResponseShape(tt.opcode); got != tt.response {
			t.Errorf("ResponseShape(%v) = %v, want %v", tt.opcode, got, tt.response)
		}
	}

	// Unrecognized opcodes resolve to None in both directions.
	for _, op := range []Opcode{0x04, 0x80, 0xFF} {
		if got := RequestShape(op); got != ObjectNone {
			t.Errorf("RequestShape(%#x) = %v, want None", uint8(op), got)
		}
		if got := ResponseShape(op); got != ObjectNone {
			t.Errorf("ResponseShape(%#x) = %v, want None", uint8(op), got)
		}
	}
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Message) error
		want  Header
	}{
		{
			name:  "list devices",
			build: func(m *Message) error { return FillListDevices(m, 4, 10) },
			want:  Header{Opcode: OpListDevices, A: 4, B: 10},
		},
		{
			name:  "connect device",
			build: func(m *Message) error { return FillConnectDevice(m, 2, 7) },
			want:  Header{Opcode: OpConnectDevice, A: 2, B: 7},
		},
		{
			name:  "disconnect device",
			build: func(m *Message) error { return FillDisconnectDevice(m, 3, false) },
			want:  Header{Opcode: OpDisconnectDevice, A: 3, B: 0},
		},
		{
			name:  "disconnect all",
			build: func(m *Message) error { return FillDisconnectDevice(m, 0, true) },
			want:  Header{Opcode: OpDisconnectDevice, A: 0, B: 1},
		},
		{
			name:  "event",
			build: func(m *Message) error { return FillEvent(m, 1, 2) },
			want:  Header{Category: CategoryEvent, Opcode: OpEvent, A: 1, B: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Stale state must not survive the builder.
			msg := Message{Header: Header{Tag: 0xEE, Length: 99, ReturnCode: RcBusy}}
			if err := tt.build(&msg); err != nil {
				t.Fatalf("builder failed: %v", err)
			}
			if msg.Header != tt.want {
				t.Errorf("header:\n got  %+v\n want %+v", msg.Header, tt.want)
			}
			if _, ok := msg.Payload.(NoPayload); !ok {
				t.Errorf("payload is %T, want NoPayload", msg.Payload)
			}
		})
	}
}

func TestBuildersNilTarget(t *testing.T) {
	builders := map[string]func() error{
		"list":       func() error { return FillListDevices(nil, 0, 0) },
		"connect":    func() error { return FillConnectDevice(nil, 0, 0) },
		"disconnect": func() error { return FillDisconnectDevice(nil, 0, false) },
		"event":      func() error { return FillEvent(nil, 0, 0) },
	}
	for name, build := range builders {
		if err := build(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: got %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestMessageRoundTrip(t *testing.T) {
	t.Run("connect request", func(t *testing.T) {
		var msg Message
		if err := FillConnectDevice(&msg, 1, 5); err != nil {
			t.Fatalf("FillConnectDevice failed: %v", err)
		}
		msg.Header.Tag = 0x11

		data, err := EncodeMessage(&msg)
		if err != nil {
			t.Fatalf("EncodeMessage failed: %v", err)
		}
		if len(data) != HeaderSize {
			t.Fatalf("encoded %d bytes, want %d", len(data), HeaderSize)
		}

		decoded, err := DecodeMessage(data)
		if err != nil {
			t.Fatalf("DecodeMessage failed: %v", err)
		}
		if decoded.Header != msg.Header {
			t.Errorf("header mismatch:\n got  %+v\n want %+v", decoded.Header, msg.Header)
		}
	})

	t.Run("list devices response", func(t *testing.T) {
		devices := []Device{
			{ID: 0, Name: "cxl-mem0"},
			{ID: 1, Name: "cxl-mem1"},
			{ID: 2, Name: ""},
		}

		msg := Message{
			Header: Header{
				Category:   CategoryResponse,
				Tag:        0x42,
				ReturnCode: RcSuccess,
				Opcode:     OpListDevices,
				A:          uint8(len(devices)), // count convention
				B:          uint32(len(devices)),
			},
		}
		if err := msg.SetPayload(DeviceList{Devices: devices}); err != nil {
			t.Fatalf("SetPayload failed: %v", err)
		}

		data, err := EncodeMessage(&msg)
		if err != nil {
			t.Fatalf("EncodeMessage failed: %v", err)
		}

		decoded, err := DecodeMessage(data)
		if err != nil {
			t.Fatalf("DecodeMessage failed: %v", err)
		}
		if decoded.Header != msg.Header {
			t.Errorf("header mismatch:\n got  %+v\n want %+v", decoded.Header, msg.Header)
		}
		list, ok := decoded.Payload.(DeviceList)
		if !ok {
			t.Fatalf("payload is %T, want DeviceList", decoded.Payload)
		}
		if !reflect.DeepEqual(list.Devices, devices) {
			t.Errorf("devices:\n got  %v\n want %v", list.Devices, devices)
		}
	})
}

func TestEncodeMessageLengthMismatch(t *testing.T) {
	msg := Message{
		Header:  Header{Category: CategoryResponse, Opcode: OpListDevices, A: 1, Length: 3},
		Payload: DeviceList{Devices: []Device{{ID: 1, Name: "abc"}}}, // encodes to 5 bytes
	}
	if _, err := EncodeMessage(&msg); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestEncodeMessageNilTarget(t *testing.T) {
	if _, err := EncodeMessage(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeMessageTruncatedPayload(t *testing.T) {
	hdr := Header{
		Category: CategoryResponse,
		Opcode:   OpListDevices,
		A:        1,
		Length:   10, // declares more than follows
	}
	data := hdr.Encode()
	data = append(data, 0x01, 0x02)

	if _, err := DecodeMessage(data); !errors.Is(err, ErrTruncated) {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func TestDecodeMessageTrailingBytes(t *testing.T) {
	// Length says 2 but the device record inside consumes only part of
	// a well-formed list; a record that leaves declared payload bytes
	// unconsumed is rejected.
	hdr := Header{
		Category: CategoryResponse,
		Opcode:   OpListDevices,
		A:        1,
		Length:   4,
	}
	data := hdr.Encode()
	data = append(data, 0x01, 0x00, 0xAA, 0xBB) // one empty-name record + 2 stray bytes

	if _, err := DecodeMessage(data); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestSetPayloadStampsLength(t *testing.T) {
	var msg Message
	if err := FillListDevices(&msg, 2, 0); err != nil {
		t.Fatalf("FillListDevices failed: %v", err)
	}

	msg.Header.Category = CategoryResponse
	err := msg.SetPayload(DeviceList{Devices: []Device{
		{ID: 0, Name: "ab"},
		{ID: 1, Name: "cdef"},
	}})
	if err != nil {
		t.Fatalf("SetPayload failed: %v", err)
	}
	if msg.Header.Length != 10 {
		t.Errorf("Length = %d, want 10", msg.Header.Length)
	}
}
