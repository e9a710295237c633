package readers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failure inside a single grammar attempt
type ErrorKind int

const (
	// GrammarMismatch: an expected literal, marker or separator is absent
	GrammarMismatch ErrorKind = iota
	// MalformedField: a numeric or quoted token does not have the expected shape
	MalformedField
	// UnsupportedTopology: an element type code outside the supported table.
	// It aborts the whole decode, no other grammar is tried.
	UnsupportedTopology
)

func (k ErrorKind) String() string {
	switch k {
	case GrammarMismatch:
		return "grammar mismatch"
	case MalformedField:
		return "malformed field"
	case UnsupportedTopology:
		return "unsupported topology"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	ErrGrammarMismatch     = errors.New("grammar mismatch")
	ErrMalformedField      = errors.New("malformed field")
	ErrUnsupportedTopology = errors.New("unsupported element topology")
	ErrNoGrammarMatched    = errors.New("no gmsh grammar matched")
)

// ParseError is a position anchored failure of one grammar
type ParseError struct {
	Kind     ErrorKind
	Grammar  string
	Offset   int // byte offset into the input
	Line     int // 1-based
	Column   int // 1-based, in bytes
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gmsh %s: %v at line %d, column %d: expected %s",
		e.Grammar, e.Kind, e.Line, e.Column, e.Expected)
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case MalformedField:
		return ErrMalformedField
	case UnsupportedTopology:
		return ErrUnsupportedTopology
	default:
		return ErrGrammarMismatch
	}
}

// DecodeError is returned once every grammar failed. Furthest is the failure
// that got deepest into the input.
type DecodeError struct {
	Attempts []*ParseError
	Furthest *ParseError
}

func newDecodeError(attempts []*ParseError) *DecodeError {
	de := &DecodeError{Attempts: attempts}
	for _, a := range attempts {
		if de.Furthest == nil || a.Offset > de.Furthest.Offset {
			de.Furthest = a
		}
	}
	return de
}

func (e *DecodeError) Error() string {
	if e.Furthest == nil {
		return ErrNoGrammarMatched.Error()
	}
	var tried []string
	for _, a := range e.Attempts {
		tried = append(tried, a.Grammar)
	}
	return fmt.Sprintf("%v (tried %s); furthest: %v",
		ErrNoGrammarMatched, strings.Join(tried, ", "), e.Furthest)
}

func (e *DecodeError) Unwrap() error { return ErrNoGrammarMatched }
