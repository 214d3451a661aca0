package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Note is a single lifecycle notification emitted by the loop.
// Notes decouple test assertions from real rendering: tests attach a
// Recorder and read the notes instead of inspecting a display.
type Note struct {
	Name string
	Data map[string]any
}

// Listener receives lifecycle notes from a loop.
type Listener interface {
	Notify(note Note)
}

// Recorder is a Listener that keeps every note it receives, in order.
type Recorder struct {
	notes []Note
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify appends the note to the log.
func (r *Recorder) Notify(note Note) {
	r.notes = append(r.notes, note)
}

// Notes returns a snapshot of all recorded notes.
func (r *Recorder) Notes() []Note {
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Names returns the note names in the order they were recorded.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.notes))
	for i, n := range r.notes {
		names[i] = n.Name
	}
	return names
}

// Filter returns only the notes with the given name, preserving order.
func (r *Recorder) Filter(name string) []Note {
	var out []Note
	for _, n := range r.notes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}

// String formats the log, one note per line with sorted data keys.
func (r *Recorder) String() string {
	var sb strings.Builder
	for i, n := range r.notes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(n.Name)
		keys := make([]string, 0, len(n.Data))
		for k := range n.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, n.Data[k])
		}
	}
	return sb.String()
}
