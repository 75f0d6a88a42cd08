package scenario

import "errors"

// Parse errors. Both abort the run at the point of failure; events already
// emitted for earlier lines stay on the output.
var (
	// ErrBadTimeout indicates a #timeout: value that is not a number.
	ErrBadTimeout = errors.New("scenario: invalid timeout value")

	// ErrBadHeader indicates a #! directive with malformed JSON.
	ErrBadHeader = errors.New("scenario: invalid header directive")
)
