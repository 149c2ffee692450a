package instrument

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

// EventKind classifies an incoming MIDI message.
type EventKind int

const (
	// EventIgnored covers every message the instrument does not react to.
	EventIgnored EventKind = iota
	EventNoteOn
	EventNoteOff
)

func (k EventKind) String() string {
	switch k {
	case EventIgnored:
		return "ignored"
	case EventNoteOn:
		return "note-on"
	case EventNoteOff:
		return "note-off"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a parsed note message.
type Event struct {
	Kind EventKind
	Note uint8
}

// NoteOn returns a note-on event for note.
func NoteOn(note uint8) Event { return Event{Kind: EventNoteOn, Note: note} }

// NoteOff returns a note-off event for note.
func NoteOff(note uint8) Event { return Event{Kind: EventNoteOff, Note: note} }

// ParseMIDI classifies a raw MIDI message. Status 0x9n is a note-on whatever
// its velocity and 0x8n is a note-off; all channels are accepted. Anything
// else, including truncated messages, is EventIgnored.
func ParseMIDI(raw []byte) Event {
	if len(raw) < 3 {
		return Event{Kind: EventIgnored}
	}
	msg := midi.Message(raw[:3])

	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return NoteOn(key)
	case msg.GetNoteOff(&channel, &key, &velocity):
		return NoteOff(key)
	}
	return Event{Kind: EventIgnored}
}
