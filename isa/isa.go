// Package isa loads and validates instruction-set descriptions: the ordered
// list of valid instructions, the set of invalid opcodes and the
// addressing-mode symbol table.
package isa

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// NumOpcodes is the size of the one-byte opcode space.
const NumOpcodes = 256

var (
	// ErrMalformed is matched by errors caused by an input that doesn't
	// follow the description format.
	ErrMalformed = errors.New("malformed instruction-set description")

	// ErrLookup is matched by errors caused by a reference to something the
	// description doesn't define.
	ErrLookup = errors.New("lookup failed")
)

// Description is an instruction-set description.
//
// Instructions are assigned, in order, to the opcodes 0x00 to 0xFF that are
// not listed in InvalidOpcodes.
type Description struct {
	InvalidOpcodes  []string          `toml:"invalid_opcodes"`
	Instructions    []string          `toml:"instructions"`
	AddressingModes map[string]string `toml:"addressing_modes"`

	// Optional, one entry per instruction when present.
	Cycles      []uint8 `toml:"cycles"`
	PagePenalty []bool  `toml:"page_penalty"`
}

// IsInvalidFunc returns a function reporting whether an opcode is listed in
// the description invalid opcodes.
func (desc *Description) IsInvalidFunc() func(op uint8) bool {
	set := make(map[string]struct{}, len(desc.InvalidOpcodes))
	for _, s := range desc.InvalidOpcodes {
		set[s] = struct{}{}
	}
	return func(op uint8) bool {
		_, ok := set[Hex(op)]
		return ok
	}
}

// Timing returns the cycle count and page penalty flag of the i-th
// instruction, or zero values if the description doesn't carry them.
func (desc *Description) Timing(i int) (cycles uint8, penalty bool) {
	if i < len(desc.Cycles) {
		cycles = desc.Cycles[i]
	}
	if i < len(desc.PagePenalty) {
		penalty = desc.PagePenalty[i]
	}
	return cycles, penalty
}

var hexes = func() (h [NumOpcodes]string) {
	for i := range h {
		h[i] = fmt.Sprintf("%02X", i)
	}
	return h
}()

// Hex returns the canonical form of an opcode, as listed in invalid opcodes:
// 2 upper-case, zero-padded, hexadecimal digits.
func Hex(op uint8) string {
	return hexes[op]
}

// Descriptor is a parsed instruction descriptor.
type Descriptor struct {
	Mnemonic string
	ModeKey  string
}

// ParseDescriptor parses a "MNEMONIC MODE" instruction descriptor. Tokens are
// separated by exactly one space.
func ParseDescriptor(s string) (Descriptor, error) {
	toks := strings.Split(s, " ")
	if len(toks) != 2 || toks[0] == "" || toks[1] == "" {
		return Descriptor{}, errors.Wrapf(ErrMalformed, "descriptor %q, want \"MNEMONIC MODE\"", s)
	}
	return Descriptor{Mnemonic: toks[0], ModeKey: toks[1]}, nil
}

func (d Descriptor) String() string {
	return d.Mnemonic + " " + d.ModeKey
}
