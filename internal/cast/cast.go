// Package cast implements the recording stream: an asciicast-style header
// line followed by one JSON object per timestamped output event.
package cast

import (
	"encoding/json"
	"io"
	"math"
)

// Version is the recording format version written in the header.
const Version = 2

// Output is the event type for data written to the terminal. It is the
// only type the simulation engine produces.
const Output = "o"

// Header is the first line of a recording.
type Header struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// Event is one timestamped unit of terminal output. Time is kept at full
// precision; serialization rounds it to two decimals for display.
type Event struct {
	Time float64 `json:"time"`
	Type string  `json:"event_type"`
	Data string  `json:"event_data"`
}

// Emitter receives events in emission order. Implementations must preserve
// that order; emission is append-only and cannot be retracted.
type Emitter interface {
	WriteEvent(Event) error
}

// Writer serializes a recording to an io.Writer, one JSON object per line,
// in strict call order.
type Writer struct {
	enc *json.Encoder
}

// NewWriter returns a Writer emitting to w. HTML escaping is disabled so
// event data round-trips verbatim.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// WriteHeader writes the recording header line.
func (w *Writer) WriteHeader(h Header) error {
	h.Version = Version
	return w.enc.Encode(h)
}

// WriteEvent writes one event line. The printed timestamp is rounded to
// two decimal places; callers keep advancing on the unrounded time.
func (w *Writer) WriteEvent(e Event) error {
	e.Time = roundTime(e.Time)
	return w.enc.Encode(e)
}

func roundTime(t float64) float64 {
	return math.Round(t*100) / 100
}

// Collector is an Emitter that accumulates events in memory, for tests and
// timing inspection.
type Collector struct {
	Events []Event
}

func (c *Collector) WriteEvent(e Event) error {
	c.Events = append(c.Events, e)
	return nil
}
