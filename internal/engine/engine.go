package engine

import (
	"bufio"
	"io"

	"github.com/san-kum/scenacast/internal/cast"
	"github.com/san-kum/scenacast/internal/scenario"
)

// Terminal control sequences written into event data.
const (
	clearSeq  = "\r\x1b[2J\r\x1b[H"
	brightOn  = "\x1b[1m"
	brightOff = "\x1b[0m"
	promptSeq = "$ "
	crlf      = "\r\n"

	// Mark toggles bright mode when typed inside a command line.
	Mark = '#'
)

// PreviewLine is one logical on-screen line kept for the SVG preview: an
// ordered sequence of text segments. Command lines store [label, text],
// plain lines store [text]. Lines that produce no visible output store
// nothing at all.
type PreviewLine []string

// Result collects what a run produced besides the emitted event stream.
type Result struct {
	Preview []PreviewLine
	Events  int     // events emitted
	Lines   int     // body lines processed
	End     float64 // final cursor value, seconds
}

// Engine interprets a scenario body and emits output events to a sink.
type Engine struct {
	step float64
	out  cast.Emitter

	cursor float64
	events int
}

// New returns an Engine emitting to out with h's step. The sink is injected;
// the engine never touches files, argv or the environment.
func New(h scenario.Header, out cast.Emitter) *Engine {
	return &Engine{step: h.Step, out: out}
}

// Run reads body lines from r in order and processes each one completely
// before the next. The initial cursor value is 3×step. A malformed timeout
// aborts immediately; events already emitted stay with the sink.
func (e *Engine) Run(r io.Reader) (*Result, error) {
	e.cursor = 3 * e.step
	e.events = 0
	res := &Result{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for index := 0; sc.Scan(); index++ {
		line, err := scenario.Classify(sc.Text(), index)
		if err != nil {
			return nil, err
		}
		if line.Kind != scenario.KindHeader {
			res.Lines++
		}

		switch line.Kind {
		case scenario.KindHeader:
			// consumed before the run; no advance, no event

		case scenario.KindTimeout:
			e.cursor += line.Timeout

		case scenario.KindComment:
			// no advance, no event

		case scenario.KindClear:
			if err := e.clear(&e.cursor); err != nil {
				return nil, err
			}

		case scenario.KindBlank:
			e.cursor += 3 * e.step

		case scenario.KindCommand:
			pv, err := e.commandLine(&e.cursor, line.Prompt, line.Text)
			if err != nil {
				return nil, err
			}
			res.Preview = append(res.Preview, pv)

		case scenario.KindPlain:
			if err := e.emit(e.cursor, line.Text+crlf); err != nil {
				return nil, err
			}
			res.Preview = append(res.Preview, PreviewLine{line.Text})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	res.Events = e.events
	res.End = e.cursor
	return res, nil
}

// clear pauses, emits the clear-and-home sequence, then pauses again.
// Total advance is always 21×step.
func (e *Engine) clear(cur *float64) error {
	*cur += 18 * e.step
	if err := e.emit(*cur, clearSeq); err != nil {
		return err
	}
	*cur += 3 * e.step
	return nil
}

// commandLine simulates a prompt appearing and text being typed one
// keystroke per step, ending with a newline. A prompt label, when present,
// is rendered green ahead of the "$ " marker.
func (e *Engine) commandLine(cur *float64, prompt, text string) (PreviewLine, error) {
	*cur += e.step

	promptLine := promptSeq
	if prompt != "" {
		promptLine = "\x1b[32m" + prompt + brightOff + promptSeq
	}
	if err := e.emit(*cur, promptLine); err != nil {
		return nil, err
	}

	*cur += 3 * e.step

	if err := e.typeText(cur, text); err != nil {
		return nil, err
	}
	return PreviewLine{prompt, text}, nil
}

// typeText emits one event per character of text. A Mark character first
// switches bright mode on at the same timestamp; bright mode is restored
// at most once, at the end of the line.
func (e *Engine) typeText(cur *float64, text string) error {
	bright := false
	for _, c := range text {
		*cur += e.step
		if c == Mark {
			if err := e.emit(*cur, brightOn); err != nil {
				return err
			}
			bright = true
		}
		if err := e.emit(*cur, string(c)); err != nil {
			return err
		}
	}
	if bright {
		if err := e.emit(*cur, brightOff); err != nil {
			return err
		}
	}

	*cur += 3 * e.step
	return e.emit(*cur, crlf)
}

func (e *Engine) emit(t float64, data string) error {
	e.events++
	return e.out.WriteEvent(cast.Event{Time: t, Type: cast.Output, Data: data})
}
