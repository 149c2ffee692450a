package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
)

// Event is a MIDI message due at an absolute frame position.
type Event struct {
	Frame   int64
	Message midi.Message
}

// Note is a held key with a start time and a duration.
type Note struct {
	Key      uint8
	Start    time.Duration
	Duration time.Duration
}

// End returns when the note is released.
func (n Note) End() time.Duration { return n.Start + n.Duration }

// Schedule converts notes into note-on/note-off events at sampleRate,
// sorted by frame. At equal frames note-offs come first so that a note
// ending exactly where the next begins does not cut the new one.
func Schedule(notes []Note, sampleRate float64) []Event {
	events := make([]Event, 0, 2*len(notes))
	for _, n := range notes {
		events = append(events,
			Event{Frame: toFrames(n.Start, sampleRate), Message: midi.NoteOn(0, n.Key, 100)},
			Event{Frame: toFrames(n.End(), sampleRate), Message: midi.NoteOff(0, n.Key)},
		)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Frame != events[j].Frame {
			return events[i].Frame < events[j].Frame
		}
		return isNoteOff(events[i].Message) && !isNoteOff(events[j].Message)
	})
	return events
}

// Span returns the frame just after the last event, or 0 for no events.
func Span(events []Event) int64 {
	var end int64
	for _, ev := range events {
		if ev.Frame+1 > end {
			end = ev.Frame + 1
		}
	}
	return end
}

// ParseNotes parses a comma separated list of key@start+duration items,
// for example "69@0s+1s,72@1s+500ms". Start defaults to the end of the
// previous note and duration to one second, so "60,64,67" plays three
// consecutive one-second notes.
func ParseNotes(list string) ([]Note, error) {
	var (
		notes []Note
		next  time.Duration
	)
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n := Note{Start: next, Duration: time.Second}

		keyPart, rest, hasStart := strings.Cut(item, "@")
		if !hasStart {
			keyPart, rest, _ = strings.Cut(item, "+")
			if rest != "" {
				rest = "+" + rest
			}
		}
		key, err := strconv.Atoi(strings.TrimSpace(keyPart))
		if err != nil || key < 0 || key > 127 {
			return nil, fmt.Errorf("render: invalid note key %q", keyPart)
		}
		n.Key = uint8(key)

		startPart, durPart, hasDur := strings.Cut(rest, "+")
		if hasStart && startPart != "" {
			if n.Start, err = time.ParseDuration(startPart); err != nil {
				return nil, fmt.Errorf("render: invalid start in %q: %w", item, err)
			}
		}
		if hasDur {
			if n.Duration, err = time.ParseDuration(durPart); err != nil {
				return nil, fmt.Errorf("render: invalid duration in %q: %w", item, err)
			}
		}
		if n.Start < 0 || n.Duration <= 0 {
			return nil, fmt.Errorf("render: note %q must start at >= 0 and last > 0", item)
		}

		notes = append(notes, n)
		next = n.End()
	}
	return notes, nil
}

func toFrames(d time.Duration, sampleRate float64) int64 {
	return int64(math.Round(d.Seconds() * sampleRate))
}

func isNoteOff(msg midi.Message) bool {
	var ch, key, vel uint8
	return msg.GetNoteOff(&ch, &key, &vel)
}
