package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrlabs/emapi-go/pkg/wire"
)

func TestMessageEventRoundTrip(t *testing.T) {
	session := uuid.NewString()

	var msg wire.Message
	require.NoError(t, wire.FillListDevices(&msg, 0, 0))
	msg.Header.Tag = 0x42

	event := NewMessageEvent(session, DirectionEncode, &msg, wire.HeaderSize)

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.Equal(t, session, decoded.SessionID)
	assert.Equal(t, DirectionEncode, decoded.Direction)
	assert.Equal(t, CategoryMessage, decoded.Category)
	require.NotNil(t, decoded.Message)
	assert.Equal(t, uint8(wire.OpListDevices), decoded.Message.Opcode)
	assert.Equal(t, uint8(0x42), decoded.Message.Tag)
	assert.Equal(t, wire.HeaderSize, decoded.Message.WireSize)
	assert.Nil(t, decoded.Error)
	assert.WithinDuration(t, event.Timestamp, decoded.Timestamp, time.Second)
}

func TestMessageEventDeviceCount(t *testing.T) {
	msg := wire.Message{
		Header: wire.Header{Category: wire.CategoryResponse, Opcode: wire.OpListDevices, A: 2},
	}
	require.NoError(t, msg.SetPayload(wire.DeviceList{Devices: []wire.Device{
		{ID: 0, Name: "a"},
		{ID: 1, Name: "b"},
	}}))

	event := NewMessageEvent("s", DirectionDecode, &msg, 18)
	require.NotNil(t, event.Message)
	assert.Equal(t, 2, event.Message.DeviceCount)
}

func TestErrorEventRoundTrip(t *testing.T) {
	data := []byte{0x01, 0x05, 'a'}
	event := NewErrorEvent("session", DirectionDecode, "DecodePayload", errors.New("truncated input"), data)

	encoded, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(encoded)
	require.NoError(t, err)

	require.NotNil(t, decoded.Error)
	assert.Equal(t, CategoryError, decoded.Category)
	assert.Equal(t, "DecodePayload", decoded.Error.Operation)
	assert.Equal(t, "truncated input", decoded.Error.Message)
	assert.True(t, bytes.Equal(data, decoded.Error.Data))
	assert.False(t, decoded.Error.Truncated)
}

func TestErrorEventTruncatesData(t *testing.T) {
	big := make([]byte, MaxEventDataSize+100)
	event := NewErrorEvent("s", DirectionDecode, "DecodeMessage", errors.New("boom"), big)

	require.NotNil(t, event.Error)
	assert.Len(t, event.Error.Data, MaxEventDataSize)
	assert.True(t, event.Error.Truncated)
}

func TestDirectionAndCategoryStrings(t *testing.T) {
	assert.Equal(t, "ENCODE", DirectionEncode.String())
	assert.Equal(t, "DECODE", DirectionDecode.String())
	assert.Equal(t, "UNKNOWN", Direction(9).String())
	assert.Equal(t, "MESSAGE", CategoryMessage.String())
	assert.Equal(t, "ERROR", CategoryError.String())
	assert.Equal(t, "UNKNOWN", Category(9).String())
}
