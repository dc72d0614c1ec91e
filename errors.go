package bmerge

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindValidation
	KindFetch
	KindCache
	KindParse
	KindOutput
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindFetch:
		return "fetch"
	case KindCache:
		return "cache"
	case KindParse:
		return "parse"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrRunFailed is returned at the end of a run in which at least one source
// could not be fetched or contained lines that failed to parse. The output has
// been written when this is returned.
var ErrRunFailed = errors.New("some blocklists failed")

// Error carries the kind of a failure along with the chain of messages that
// describe it.
type Error struct {
	Kind ErrorKind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// NewError returns an error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: errors.Errorf(format, args...)}
}

// WrapError adds context to err and tags it with a kind. Returns nil if err
// is nil.
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: errors.Wrapf(err, format, args...)}
}

// KindOf returns the kind of the outermost *Error in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
