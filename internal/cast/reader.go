package cast

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadRecording indicates input that is not a recording this package wrote.
var ErrBadRecording = errors.New("cast: malformed recording")

// Read parses a recording produced by Writer: a header line followed by one
// event object per line. Trailing blank lines are tolerated.
func Read(r io.Reader) (Header, []Event, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Header{}, nil, err
		}
		return Header{}, nil, fmt.Errorf("%w: empty input", ErrBadRecording)
	}

	var h Header
	if err := unmarshalLine(sc.Text(), &h); err != nil {
		return Header{}, nil, fmt.Errorf("%w: header: %v", ErrBadRecording, err)
	}
	if h.Version != Version {
		return Header{}, nil, fmt.Errorf("%w: unsupported version %d", ErrBadRecording, h.Version)
	}

	var events []Event
	for line := 2; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var e Event
		if err := unmarshalLine(text, &e); err != nil {
			return Header{}, nil, fmt.Errorf("%w: line %d: %v", ErrBadRecording, line, err)
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return Header{}, nil, err
	}
	return h, events, nil
}

func unmarshalLine(line string, v any) error {
	return json.Unmarshal([]byte(line), v)
}
