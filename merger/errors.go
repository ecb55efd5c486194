package merger

import (
	"errors"
	"fmt"
)

// Error kinds, match with errors.Is
var (
	ErrConfig            = errors.New("invalid config")
	ErrDiscover          = errors.New("discovery failed")
	ErrLoad              = errors.New("load failed")
	ErrMissingIdentifier = errors.New("identifier column missing")
	ErrMerge             = errors.New("merge failed")
	ErrWrite             = errors.New("write failed")
	ErrCanceled          = errors.New("merge canceled")
)

// Error represents a failed merge run
type Error struct {
	Kind error  // one of the Err* kinds
	URL  string // file or location involved, if any
	Err  error  // underlying cause
}

func (e *Error) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.URL, e.Err)
}

// Unwrap returns the kind and the cause
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Is reports a missing identifier as a load failure too
func (e *Error) Is(target error) bool {
	return e.Kind == ErrMissingIdentifier && target == ErrLoad
}

func newError(kind error, URL string, err error) *Error {
	return &Error{Kind: kind, URL: URL, Err: err}
}
