package isa

import (
	"github.com/go-faster/errors"
)

// Validate checks the description invariants and returns a
// *ValidationError listing every problem found, or nil.
//
// Each problem matches either ErrMalformed or ErrLookup.
func (desc *Description) Validate() error {
	var problems []error
	addf := func(target error, format string, args ...any) {
		problems = append(problems, errors.Wrapf(target, format, args...))
	}

	seen := make(map[string]bool, len(desc.InvalidOpcodes))
	for i, s := range desc.InvalidOpcodes {
		switch {
		case !isHexOpcode(s):
			addf(ErrMalformed, "invalid_opcodes[%d] %q, want 2 upper-case hex digits", i, s)
		case seen[s]:
			addf(ErrMalformed, "invalid_opcodes[%d] %q is a duplicate", i, s)
		}
		seen[s] = true
	}

	if n := len(desc.Instructions) + len(desc.InvalidOpcodes); n != NumOpcodes {
		addf(ErrMalformed, "%d instructions + %d invalid opcodes = %d, want %d",
			len(desc.Instructions), len(desc.InvalidOpcodes), n, NumOpcodes)
	}

	for i, s := range desc.Instructions {
		d, err := ParseDescriptor(s)
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "instructions[%d]", i))
			continue
		}
		if _, ok := desc.AddressingModes[d.ModeKey]; !ok {
			addf(ErrLookup, "instructions[%d] %q: unknown addressing mode %q", i, s, d.ModeKey)
		}
	}

	if desc.Cycles != nil && len(desc.Cycles) != len(desc.Instructions) {
		addf(ErrMalformed, "%d cycles for %d instructions", len(desc.Cycles), len(desc.Instructions))
	}
	if desc.PagePenalty != nil && len(desc.PagePenalty) != len(desc.Instructions) {
		addf(ErrMalformed, "%d page penalties for %d instructions", len(desc.PagePenalty), len(desc.Instructions))
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func isHexOpcode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := range 2 {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
