package regexlib

import "fmt"

// ParseError reports an ill-formed pattern. Offset is the byte offset
// into the input at which parsing stopped.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// InvalidStateError is the panic value raised by Next and Accepting
// when queried with a state id beyond the dead state. Such a call is a
// bug in the caller; the DFA itself remains valid.
type InvalidStateError struct {
	State int
	Size  int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("state %d out of range (dfa size %d)", e.State, e.Size)
}
