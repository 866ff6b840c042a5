package levdict

import "github.com/pkg/errors"

// Sentinel errors returned at the CreateIndex/Search API boundary.
// Callers can test with errors.Is against these; the wrapped message
// (added with errors.Wrapf at the call site) carries the offending
// value for diagnostics.
var (
	// ErrInvalidMethod is returned by CreateIndex for an unrecognized
	// Method tag.
	ErrInvalidMethod = errors.New("levdict: invalid method")

	// ErrInvalidEditDistance is returned by Search when maxEdits is
	// negative or exceeds the cap for the index's method.
	ErrInvalidEditDistance = errors.New("levdict: invalid edit distance")

	// ErrPatternTooLong is returned by Search when the pattern length
	// exceeds the cap for the index's method and requested edit bound.
	ErrPatternTooLong = errors.New("levdict: pattern too long")
)
