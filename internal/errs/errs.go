// Package errs holds the error taxonomy shared by all kvec packages.
//
// The sentinels are re-exported by the root package; match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidArgument marks violated preconditions: mismatched dimensions,
	// k out of range, empty neighbor sets.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain marks numeric failures: empty clusters, single-cluster variance,
	// zero-variance scores, iteration caps.
	ErrDomain = errors.New("domain error")

	// ErrDataFormat marks malformed input records.
	ErrDataFormat = errors.New("data format error")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument with the given message.
func InvalidArgument(msg string) error {
	return &wrapped{msg: msg, kind: ErrInvalidArgument}
}

// Domain returns an error wrapping ErrDomain with the given message.
func Domain(msg string) error {
	return &wrapped{msg: msg, kind: ErrDomain}
}

type wrapped struct {
	msg  string
	kind error
}

func (e *wrapped) Error() string { return e.msg }

func (e *wrapped) Unwrap() error { return e.kind }
