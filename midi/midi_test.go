package midi_test

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"

	. "github.com/webern/midi/midi"
)

func TestSplitStatusByteFromWireMessages(t *testing.T) {
	messages := []struct {
		message    gomidi.Message
		statusType StatusType
		channel    uint8
	}{
		{gomidi.NoteOff(3, 60), NoteOff, 3},
		{gomidi.NoteOn(0, 60, 100), NoteOn, 0},
		{gomidi.NoteOn(9, 38, 0), NoteOn, 9},
		{gomidi.PolyAfterTouch(1, 64, 20), PolyPressure, 1},
		{gomidi.ControlChange(15, 7, 127), ControlOrSelectChannelMode, 15},
		{gomidi.ControlChange(2, 123, 0), ControlOrSelectChannelMode, 2},
		{gomidi.ProgramChange(4, 12), Program, 4},
		{gomidi.AfterTouch(5, 90), ChannelPressure, 5},
		{gomidi.Pitchbend(6, -200), PitchBend, 6},
	}
	for _, m := range messages {
		status := m.message.Bytes()[0]
		statusType, channel, err := SplitStatusByte(status)
		require.NoError(t, err, "status %#x", status)
		assert.Equal(t, m.statusType, statusType, "status %#x", status)
		assert.Equal(t, m.channel, channel)
		assert.Equal(t, status, StatusByte(statusType, channel))
	}
}

func TestSplitStatusByteSystemMessages(t *testing.T) {
	for _, message := range []gomidi.Message{
		gomidi.TimingClock(),
		gomidi.Start(),
		gomidi.Stop(),
		gomidi.Continue(),
		gomidi.Activesense(),
		gomidi.Reset(),
	} {
		status := message.Bytes()[0]
		statusType, _, err := SplitStatusByte(status)
		require.NoError(t, err)
		assert.Equal(t, System, statusType)
	}
}

func TestSplitStatusByteRejectsDataBytes(t *testing.T) {
	for _, b := range []byte{0x00, 0x3C, 0x7F} {
		_, _, err := SplitStatusByte(b)
		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr), "byte %#x", b)
		assert.Equal(t, b>>4, rangeErr.Value)
		assert.Regexp(t, regexp.MustCompile(`^midi_test\.go:\d+$`), rangeErr.Site)
	}
}

func TestStatusByteMasksChannel(t *testing.T) {
	assert.Equal(t, byte(0x9F), StatusByte(NoteOn, 0xFF))
	assert.Equal(t, byte(NoteOffEvent), StatusByte(NoteOff, 0))
	assert.Equal(t, byte(PitchWheelChange), StatusByte(PitchBend, 0))
	assert.Equal(t, byte(SystemMessage), StatusByte(System, 0))
}

func TestChannelVoiceConstantsMatchStatusTypes(t *testing.T) {
	constants := map[byte]StatusType{
		NoteOffEvent:          NoteOff,
		NoteOnEvent:           NoteOn,
		PolyphonicKeyPressure: PolyPressure,
		ControlChange:         ControlOrSelectChannelMode,
		ProgramChange:         Program,
		ChannelPressureEvent:  ChannelPressure,
		PitchWheelChange:      PitchBend,
	}
	for status, want := range constants {
		statusType, channel, err := SplitStatusByte(status)
		require.NoError(t, err)
		assert.Equal(t, want, statusType)
		assert.Equal(t, uint8(0), channel)
	}
}

func TestIsStatusByte(t *testing.T) {
	assert.True(t, IsStatusByte(0x80))
	assert.True(t, IsStatusByte(0xFF))
	assert.False(t, IsStatusByte(0x7F))
	assert.False(t, IsStatusByte(0x00))
}

func TestIsFileFramingMarker(t *testing.T) {
	assert.True(t, IsFileFramingMarker(0xFF))
	assert.True(t, IsFileFramingMarker(0xF0))
	assert.True(t, IsFileFramingMarker(0xF7))
	for _, b := range []byte{0x00, 0x90, 0xF1, 0xF8, 0xFE} {
		assert.False(t, IsFileFramingMarker(b), "byte %#x", b)
	}
}

// recordingFactory claims every byte except the one it is told to decline and
// hands out processors that read a fixed number of data bytes.
type recordingFactory struct {
	dataBytes int
	decline   byte
	statuses  []byte
}

func (f *recordingFactory) ConstructProcessor(status byte) EventProcessor {
	if status == f.decline {
		return nil
	}
	f.statuses = append(f.statuses, status)
	return &dataProcessor{count: f.dataBytes}
}

type dataProcessor struct {
	count int
	data  []byte
}

func (p *dataProcessor) Process(reader io.ByteReader) error {
	for i := 0; i < p.count; i++ {
		b, err := reader.ReadByte()
		if err != nil {
			return err
		}
		p.data = append(p.data, b)
	}
	return nil
}

func TestDispatcherRoutesByStatusType(t *testing.T) {
	noteOn := &recordingFactory{dataBytes: 2}
	program := &recordingFactory{dataBytes: 1}

	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Register(NoteOn, noteOn))
	require.NoError(t, dispatcher.Register(Program, program))

	processor, err := dispatcher.Processor(0x93)
	require.NoError(t, err)
	require.NoError(t, processor.Process(bytes.NewBuffer([]byte{60, 100})))
	assert.Equal(t, []byte{60, 100}, processor.(*dataProcessor).data)

	require.NoError(t, dispatcher.Dispatch(0xC1, bytes.NewBuffer([]byte{5})))
	assert.Equal(t, []byte{0x93}, noteOn.statuses)
	assert.Equal(t, []byte{0xC1}, program.statuses)
}

func TestDispatcherProcessError(t *testing.T) {
	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Register(NoteOn, &recordingFactory{dataBytes: 2}))

	err := dispatcher.Dispatch(0x90, bytes.NewBuffer([]byte{60}))
	assert.ErrorIs(t, err, io.EOF)
}

func TestDispatcherRegisterErrors(t *testing.T) {
	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Register(PitchBend, &recordingFactory{}))

	err := dispatcher.Register(PitchBend, &recordingFactory{})
	require.Error(t, err)
	re := regexp.MustCompile("already registered for PitchBend")
	assert.NotEqual(t, "", re.FindString(err.Error()))

	err = dispatcher.Register(NoteOn, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil EventFactory")

	err = dispatcher.Register(StatusType(20), &recordingFactory{})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDispatcherProcessorErrors(t *testing.T) {
	dispatcher := NewDispatcher()
	require.NoError(t, dispatcher.Register(NoteOn, &recordingFactory{decline: 0x9F}))

	for _, marker := range []byte{FileMetaEvent, FileSysExF0, FileSysExF7} {
		processor, err := dispatcher.Processor(marker)
		assert.Nil(t, processor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file framing marker")
	}

	processor, err := dispatcher.Processor(0x45)
	assert.Nil(t, processor)
	assert.ErrorIs(t, err, ErrOutOfRange)

	processor, err = dispatcher.Processor(0x80)
	assert.Nil(t, processor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no EventProcessor for status byte 0x80 (NoteOff)")

	processor, err = dispatcher.Processor(0x9F)
	assert.Nil(t, processor)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(NoteOn)")
}
