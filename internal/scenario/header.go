package scenario

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Header defaults, used for fields the #! directive leaves out.
const (
	DefaultStep   = 0.10
	DefaultWidth  = 77
	DefaultHeight = 20
)

// Header holds the per-script settings parsed from an optional first-line
// "#! {...}" directive. Immutable after construction.
type Header struct {
	Step   float64 `json:"step"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// DefaultHeader returns a Header with all fields at their defaults.
func DefaultHeader() Header {
	return Header{Step: DefaultStep, Width: DefaultWidth, Height: DefaultHeight}
}

// ParseHeader decodes the first line of a script. Lines without the header
// marker yield the defaults; fields missing from the JSON object keep their
// defaults. Malformed JSON is fatal.
func ParseHeader(first string) (Header, error) {
	h := DefaultHeader()
	raw, ok := strings.CutPrefix(first, HeaderMarker)
	if !ok {
		return h, nil
	}
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if h.Step <= 0 || h.Width <= 0 || h.Height <= 0 {
		return Header{}, fmt.Errorf("%w: step, width and height must be positive", ErrBadHeader)
	}
	return h, nil
}

// ReadHeader opens path just long enough to read its first line and parse
// the header directive. An empty file yields the defaults.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Header{}, err
		}
		return DefaultHeader(), nil
	}
	return ParseHeader(sc.Text())
}
