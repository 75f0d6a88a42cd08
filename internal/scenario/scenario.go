package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Line markers, checked in order by Classify.
const (
	HeaderMarker  = "#! "
	TimeoutMarker = "#timeout:"
	CommentMarker = "#"
	PromptMarker  = "$ "
	ShellMarker   = "(nix-shell) $ "
	ClearMarker   = "--"

	// ShellLabel is the prompt label attached to ShellMarker lines.
	ShellLabel = "(nix-shell) "
)

// Kind identifies the role of a classified line.
type Kind int

const (
	KindHeader Kind = iota
	KindTimeout
	KindComment
	KindCommand
	KindClear
	KindBlank
	KindPlain
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindTimeout:
		return "timeout"
	case KindComment:
		return "comment"
	case KindCommand:
		return "command"
	case KindClear:
		return "clear"
	case KindBlank:
		return "blank"
	case KindPlain:
		return "plain"
	}
	return "unknown"
}

// Line is one classified script line. Prompt and Text are set for
// KindCommand, Text alone for KindPlain, Timeout for KindTimeout.
type Line struct {
	Kind    Kind
	Prompt  string
	Text    string
	Timeout float64
}

// Classify assigns raw its role based on content and zero-based position.
// Every line maps to exactly one Kind; the only failure is a malformed
// timeout value, which is fatal to the whole run.
func Classify(raw string, index int) (Line, error) {
	switch {
	case index == 0 && strings.HasPrefix(raw, HeaderMarker):
		return Line{Kind: KindHeader}, nil

	case strings.HasPrefix(raw, TimeoutMarker):
		arg := strings.TrimSpace(raw[len(TimeoutMarker):])
		secs, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return Line{}, fmt.Errorf("line %d: %w: %q", index+1, ErrBadTimeout, arg)
		}
		return Line{Kind: KindTimeout, Timeout: secs}, nil

	case strings.HasPrefix(raw, CommentMarker):
		return Line{Kind: KindComment}, nil

	case strings.HasPrefix(raw, PromptMarker):
		return Line{Kind: KindCommand, Text: raw[len(PromptMarker):]}, nil

	case strings.HasPrefix(raw, ShellMarker):
		return Line{Kind: KindCommand, Prompt: ShellLabel, Text: raw[len(ShellMarker):]}, nil

	case strings.HasPrefix(raw, ClearMarker):
		return Line{Kind: KindClear}, nil

	case strings.TrimSpace(raw) == "":
		return Line{Kind: KindBlank}, nil

	default:
		return Line{Kind: KindPlain, Text: raw}, nil
	}
}
