/*
The Midi package classifies MIDI status bytes into the eight status types of
Table I "Summary of Status Bytes" in the MIDI specification. Parsers for MIDI
streams and Standard MIDI Files consult it at every message boundary to decide
which kind of message follows, and use a Dispatcher to route each status type
to the code that reads its data bytes.
*/
package midi

import (
	"fmt"
	"io"
)

const (
	DuplicateFactoryError = "an EventFactory is already registered for %v"
	FramingMarkerError    = "byte %#x is a file framing marker and has no status type"
	NilFactoryError       = "cannot register a nil EventFactory for %v"
	NoProcessorError      = "no EventProcessor for status byte %#x (%v)"
)

// IsStatusByte reports whether b has its most significant bit set. Data bytes
// never do.
func IsStatusByte(b byte) bool {
	return b&msbMask == msbMask
}

/*
IsFileFramingMarker reports whether b is one of the Standard MIDI File
markers FF (meta-event), F0 or F7 (SysEx). Container parsers must check for
these before classifying a byte, since inside a track they do not start a
regular System message.
*/
func IsFileFramingMarker(b byte) bool {
	switch b {
	case FileMetaEvent, FileSysExF0, FileSysExF7:
		return true
	}
	return false
}

/*
SplitStatusByte classifies the high nibble of a full status byte and returns
the low nibble as the channel. The channel is only meaningful for channel
voice messages; for System messages it is the rest of the system status.

A data byte (high bit clear) fails with an *OutOfRangeError carrying its high
nibble.
*/
func SplitStatusByte(b byte) (StatusType, uint8, error) {
	statusType, err := classifyStatus(b>>4, 3)
	if err != nil {
		return DefaultStatusType, 0, err
	}
	return statusType, b & ChannelMask, nil
}

// StatusByte builds the wire status byte for t on the given channel. Only the
// low 4 bits of channel are used.
func StatusByte(t StatusType, channel uint8) byte {
	return t.Value()<<4 | channel&ChannelMask
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{factories: make(map[StatusType]EventFactory)}
}

/*
Register makes f responsible for every status byte of type t. It returns an
error if t is not a valid StatusType or if another factory already handles t.
*/
func (d *Dispatcher) Register(t StatusType, f EventFactory) error {
	if !t.Valid() {
		return newOutOfRangeError(t.Value(), 2)
	}
	if f == nil {
		return fmt.Errorf(NilFactoryError, t)
	}
	if _, ok := d.factories[t]; ok {
		return fmt.Errorf(DuplicateFactoryError, t)
	}
	d.factories[t] = f
	return nil
}

/*
Processor returns the EventProcessor for the message starting with status.
File framing markers are rejected before classification. Bytes that do not
classify, status types with no registered factory and factories that decline
the byte all produce a non-nil error.
*/
func (d *Dispatcher) Processor(status byte) (EventProcessor, error) {
	if IsFileFramingMarker(status) {
		return nil, fmt.Errorf(FramingMarkerError, status)
	}
	statusType, err := classifyStatus(status>>4, 3)
	if err != nil {
		return nil, err
	}
	factory, ok := d.factories[statusType]
	if !ok {
		return nil, fmt.Errorf(NoProcessorError, status, statusType)
	}
	processor := factory.ConstructProcessor(status)
	if processor == nil {
		return nil, fmt.Errorf(NoProcessorError, status, statusType)
	}
	return processor, nil
}

// Dispatch finds the processor for status and runs it over reader.
func (d *Dispatcher) Dispatch(status byte, reader io.ByteReader) error {
	processor, err := d.Processor(status)
	if err != nil {
		return err
	}
	return processor.Process(reader)
}
