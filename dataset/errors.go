package dataset

import (
	"fmt"

	"github.com/hupe1980/kvec/internal/errs"
)

// FormatError reports a malformed input record. Line is 1-based; 0 refers to
// the input as a whole. It matches errs.ErrDataFormat.
type FormatError struct {
	Name   string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	prefix := "dataset"
	if e.Name != "" {
		prefix = e.Name
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", prefix, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", prefix, e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return errs.ErrDataFormat }
