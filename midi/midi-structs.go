package midi

/*
This file contains data structures used by the midi package.
*/

import "io"

const (
	msbMask     = 1 << 7
	StatusMask  = 0xF0
	ChannelMask = 0x0F

	// The following byte constants represent the set of Channel Voice
	// status bytes on channel 0. Their high nibbles are the Value() of the
	// matching StatusType.
	NoteOffEvent          = 0x80
	NoteOnEvent           = 0x90
	PolyphonicKeyPressure = 0xA0
	ControlChange         = 0xB0
	ProgramChange         = 0xC0
	ChannelPressureEvent  = 0xD0
	PitchWheelChange      = 0xE0
	SystemMessage         = 0xF0

	// File Spec: All meta-events begin with FF, then have an event type byte
	// (which is always less than 128).
	FileMetaEvent = 0xFF

	// File Spec: F0 <length> <bytes to be transmitted after F0>
	FileSysExF0 = 0xF0

	// File Spec: F7 <length> <all bytes to be transmitted>
	FileSysExF7 = 0xF7
)

/*
The EventProcessor interface provides an API for parsing the data bytes that
follow a status byte in a MIDI track. Because EventProcessors are created by
factories that have "claimed" the current status, if there is a failure in
parsing, the EventProcessor should return a non-nil error.
*/
type EventProcessor interface {
	Process(reader io.ByteReader) error
}

/*
The EventFactory interface provides a factory API for constructing MIDI
EventProcessors. Each EventFactory is registered with a Dispatcher under one
StatusType and is handed every status byte of that type. Returning a nil
EventProcessor indicates the byte cannot be processed by this factory.
*/
type EventFactory interface {
	ConstructProcessor(status byte) EventProcessor
}

/*
A Dispatcher maps each StatusType to at most one EventFactory. Registering a
second factory for the same StatusType is an error.

Register is not safe for concurrent use. Once registration is done, Processor
may be called from any number of goroutines.
*/
type Dispatcher struct {
	factories map[StatusType]EventFactory
}
