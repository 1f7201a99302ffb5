package jsonprinter

import "errors"

// Sentinel errors returned by the root drivers (TableAsRoot, StructAsRoot).
// They mirror the sticky in-context error code: once one of these has been
// set on a Context it stays set, and every later root-driver call on that
// Context returns it until Clear is called.
var (
	// ErrBadInput is returned when the buffer header is too short, the file
	// identifier does not match, or a union field name is too long to grow
	// a "<name>_type" suffix within the bounded scratch space.
	ErrBadInput = errors.New("jsonprinter: bad input")
	// ErrDeepRecursion is returned when table nesting exceeds Options.MaxLevels.
	ErrDeepRecursion = errors.New("jsonprinter: recursion limit exceeded")
	// ErrOverflow is returned when a fixed-size sink runs out of room, or a
	// growable sink fails to reallocate.
	ErrOverflow = errors.New("jsonprinter: buffer overflow")
)

// errorCode distinguishes the sticky error independently of the error
// value identity, so callers that only have a Context can still ask "did
// this fail, and how" without string-matching.
type errorCode int

const (
	errNone errorCode = iota
	errBadInput
	errDeepRecursion
	errOverflow
)

func (c errorCode) err() error {
	switch c {
	case errBadInput:
		return ErrBadInput
	case errDeepRecursion:
		return ErrDeepRecursion
	case errOverflow:
		return ErrOverflow
	default:
		return nil
	}
}
