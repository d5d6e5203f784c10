package isa

import (
	"fmt"
	"strings"
)

// DecodeError reports a description that can't be decoded.
type DecodeError struct {
	Format string // json or toml
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("can't decode %s description: %s", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrMalformed }

// ValidationError lists all the problems found in a description.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d problem(s) in description", len(e.Problems))
	for _, p := range e.Problems {
		sb.WriteString("\n\t- ")
		sb.WriteString(p.Error())
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() []error { return e.Problems }
