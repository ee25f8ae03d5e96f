package domain

import "errors"

// ErrorKind classifies failures so the transport layer can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindConflict
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// KindOf reports the kind of err. Anything not recognised is internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAlreadyClockedIn), errors.Is(err, ErrNotClockedIn):
		return KindConflict
	case errors.Is(err, ErrTimeLogNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
