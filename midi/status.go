package midi

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

/*
StatusType represents the status byte types in Table I "Summary of Status
Bytes" from the MIDI specification. A status byte carries the type in its 4
high-order bits and, for channel voice messages, the channel in its 4
low-order bits.

The zero value is NoteOff. It exists only so that a StatusType can be declared
before any byte has been classified; ClassifyStatus never returns it for an
input it rejects without also returning an error.
*/
type StatusType uint8

// The constants are ordered by their status nibble so that < compares the
// same way the wire values do.
const (
	// 0x8: a Note Off message.
	NoteOff StatusType = iota

	// 0x9: a Note On message. A velocity of 0 is treated as a Note Off by
	// consumers.
	NoteOn

	// 0xA: a Polyphonic key pressure/Aftertouch message.
	PolyPressure

	// 0xB: a Control change message or a Channel Mode message. Channel Mode
	// messages are sent under the same status as Control Change messages and
	// are told apart by the first data byte, which is 121 to 127 for Channel
	// Mode.
	ControlOrSelectChannelMode

	// 0xC: a Program change message.
	Program

	// 0xD: a Channel pressure/After touch message.
	ChannelPressure

	// 0xE: a Pitch bend change message.
	PitchBend

	// 0xF: a System message.
	System
)

// DefaultStatusType is the placeholder used before classification.
const DefaultStatusType = NoteOff

const (
	firstStatusValue byte = 0x8
	lastStatusValue  byte = 0xF

	StatusTypeRangeError = "status type value %#x at %s is not in the recognized range 0x8-0xf"
)

var statusTypeNames = [...]string{
	NoteOff:                    "NoteOff",
	NoteOn:                     "NoteOn",
	PolyPressure:               "PolyPressure",
	ControlOrSelectChannelMode: "ControlOrSelectChannelMode",
	Program:                    "Program",
	ChannelPressure:            "ChannelPressure",
	PitchBend:                  "PitchBend",
	System:                     "System",
}

// ErrOutOfRange matches every *OutOfRangeError with errors.Is.
var ErrOutOfRange = errors.New("status type value out of range")

/*
OutOfRangeError is returned when a value does not equal any of the eight
status type values. Site is the file:line of the call that asked for the
classification, so a parser that classifies from many places can tell which
one saw the bad byte.
*/
type OutOfRangeError struct {
	Value byte
	Site  string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(StatusTypeRangeError, e.Value, e.Site)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

/*
ClassifyStatus returns the StatusType whose value is exactly value. The caller
must pass the status nibble (0x8 through 0xF), not a full status byte: no
masking or shifting is done here. SplitStatusByte does that for callers
holding a whole byte.

Any other value yields an *OutOfRangeError. The returned StatusType is
meaningless when the error is non-nil.
*/
func ClassifyStatus(value byte) (StatusType, error) {
	return classifyStatus(value, 3)
}

// classifyStatus reports failures against the caller skip frames above
// newOutOfRangeError. Exported entry points pass 3, naming their own caller.
func classifyStatus(value byte, skip int) (StatusType, error) {
	if value < firstStatusValue || value > lastStatusValue {
		return DefaultStatusType, newOutOfRangeError(value, skip)
	}
	return StatusType(value - firstStatusValue), nil
}

func newOutOfRangeError(value byte, skip int) *OutOfRangeError {
	site := "unknown"
	if _, file, line, ok := runtime.Caller(skip); ok {
		site = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return &OutOfRangeError{Value: value, Site: site}
}

// Value returns the 4-bit status value of t, e.g. 0xB for
// ControlOrSelectChannelMode.
func (t StatusType) Value() byte {
	return byte(t) + firstStatusValue
}

// Valid reports whether t is one of the eight status types.
func (t StatusType) Valid() bool {
	return t <= System
}

func (t StatusType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("StatusType(%d)", uint8(t))
	}
	return statusTypeNames[t]
}

// StatusTypes returns every status type in value order.
func StatusTypes() []StatusType {
	return []StatusType{
		NoteOff,
		NoteOn,
		PolyPressure,
		ControlOrSelectChannelMode,
		Program,
		ChannelPressure,
		PitchBend,
		System,
	}
}
