package gen

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"isagen/isa"
)

// Row is an entry of the instruction table.
type Row struct {
	Opcode      uint8
	Mnemonic    string
	Mode        string // resolved addressing mode symbol
	Cycles      uint8
	PagePenalty bool
	Invalid     bool // placeholder for an invalid opcode
}

// Handler returns the name of the function handling the row's instruction.
func (r Row) Handler() string {
	return strings.ToLower(r.Mnemonic)
}

// Symbols holds the qualifiers of the symbolic references in a row.
type Symbols struct {
	InstructionKind string `toml:"instruction_kind"`
	AddressingMode  string `toml:"addressing_mode"`
	Handler         string `toml:"handler"`
}

// format serializes a row, without terminator.
func (s Symbols) format(r Row) string {
	return fmt.Sprintf("0x%s, %s::%s, %s::%s, %d, %t, %s::%s",
		isa.Hex(r.Opcode),
		s.InstructionKind, r.Mnemonic,
		s.AddressingMode, r.Mode,
		r.Cycles, r.PagePenalty,
		s.Handler, r.Handler())
}

// rowTerminator ends all rows but the last one.
const rowTerminator = ";\n"

// Table is the complete instruction table, one row per opcode.
type Table struct {
	Rows [isa.NumOpcodes]Row

	sym Symbols
}

// Lines returns an iterator over the serialized rows, in opcode order.
func (t *Table) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		last := len(t.Rows) - 1
		for i := range t.Rows {
			line := t.sym.format(t.Rows[i])
			if i != last {
				line += rowTerminator
			}
			if !yield(line) {
				return
			}
		}
	}
}

// WriteTo writes the serialized table to w.
//
// Implements io.WriterTo
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, t.Lines())
}

func writeLines(w io.Writer, lines iter.Seq[string]) (int64, error) {
	var written int64
	for line := range lines {
		n, err := io.WriteString(w, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
