// Package gen generates the instruction dispatch table and the handler stubs
// of an emulator CPU, from an instruction-set description.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"isagen/isa"
	"isagen/log"
)

// Placeholder is the instruction used for invalid opcodes.
type Placeholder struct {
	Mnemonic string `toml:"mnemonic"`
	Mode     string `toml:"mode"` // addressing mode key
}

// OpcodeError reports a failure to build the table row of an opcode.
type OpcodeError struct {
	Opcode uint8
	Err    error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("opcode 0x%s: %s", isa.Hex(e.Opcode), e.Err)
}

func (e *OpcodeError) Unwrap() error { return e.Err }

// A Generator turns instruction-set descriptions into an instruction table
// and handler stubs.
type Generator struct {
	Symbols     Symbols
	Placeholder Placeholder
	Dialect     Dialect
	Receiver    string // Go stubs receiver type
}

// New returns a Generator configured with cfg.
func New(cfg Config) *Generator {
	return &Generator{
		Symbols:     cfg.Symbols,
		Placeholder: cfg.Placeholder,
		Dialect:     cfg.Stubs.Dialect,
		Receiver:    cfg.Stubs.Receiver,
	}
}

// Table builds the instruction table of desc.
//
// Opcodes are visited in ascending order. Invalid opcodes get a placeholder
// row, others get the next instruction of desc. The table is either complete
// or an error is returned.
func (g *Generator) Table(desc *isa.Description) (*Table, error) {
	isInvalid := desc.IsInvalidFunc()
	tbl := &Table{sym: g.Symbols}

	next := 0
	for i := range isa.NumOpcodes {
		op := uint8(i)
		if isInvalid(op) {
			row, err := g.placeholderRow(op, desc)
			if err != nil {
				return nil, err
			}
			tbl.Rows[i] = row
			continue
		}

		if next >= len(desc.Instructions) {
			return nil, &OpcodeError{
				Opcode: op,
				Err:    errors.Wrapf(isa.ErrLookup, "instructions exhausted after %d entries", next),
			}
		}

		d, err := isa.ParseDescriptor(desc.Instructions[next])
		if err != nil {
			return nil, &OpcodeError{Opcode: op, Err: err}
		}
		mode, ok := desc.AddressingModes[d.ModeKey]
		if !ok {
			return nil, &OpcodeError{
				Opcode: op,
				Err:    errors.Wrapf(isa.ErrLookup, "unknown addressing mode %q", d.ModeKey),
			}
		}

		cycles, penalty := desc.Timing(next)
		tbl.Rows[i] = Row{
			Opcode:      op,
			Mnemonic:    d.Mnemonic,
			Mode:        mode,
			Cycles:      cycles,
			PagePenalty: penalty,
		}
		next++
	}

	if extra := len(desc.Instructions) - next; extra > 0 {
		log.ModGen.Warnf("%d instruction(s) left unassigned, starting with %q", extra, desc.Instructions[next])
	}
	log.ModGen.Debugf("table built: %d instructions, %d placeholders", next, isa.NumOpcodes-next)
	return tbl, nil
}

func (g *Generator) placeholderRow(op uint8, desc *isa.Description) (Row, error) {
	mode, ok := desc.AddressingModes[g.Placeholder.Mode]
	if !ok {
		return Row{}, &OpcodeError{
			Opcode: op,
			Err:    errors.Wrapf(isa.ErrLookup, "unknown placeholder addressing mode %q", g.Placeholder.Mode),
		}
	}
	return Row{
		Opcode:   op,
		Mnemonic: g.Placeholder.Mnemonic,
		Mode:     mode,
		Invalid:  true,
	}, nil
}

// Stubs builds the set of handler stubs of desc, one per distinct
// mnemonic.
func (g *Generator) Stubs(desc *isa.Description) (*StubSet, error) {
	set := &StubSet{dialect: g.Dialect, receiver: g.Receiver}

	seen := make(map[string]bool)
	for i, s := range desc.Instructions {
		d, err := isa.ParseDescriptor(s)
		if err != nil {
			return nil, errors.Wrapf(err, "instructions[%d]", i)
		}
		if seen[d.Mnemonic] {
			continue
		}
		seen[d.Mnemonic] = true
		set.Stubs = append(set.Stubs, Stub{Name: Row{Mnemonic: d.Mnemonic}.Handler(), Mnemonic: d.Mnemonic})
	}

	log.ModGen.Debugf("%d handler stubs", len(set.Stubs))
	return set, nil
}

// Generate writes the instruction table and the handler stubs of desc into
// the tablePath and stubsPath files, which are overwritten.
//
// Nothing is written if desc can't be turned into a complete table. Both
// files are written concurrently, the first error is returned.
func (g *Generator) Generate(desc *isa.Description, tablePath, stubsPath string) error {
	tbl, err := g.Table(desc)
	if err != nil {
		return err
	}
	stubs, err := g.Stubs(desc)
	if err != nil {
		return err
	}

	var eg errgroup.Group
	eg.Go(func() error { return writeArtifact(tablePath, tbl) })
	eg.Go(func() error { return writeArtifact(stubsPath, stubs) })
	return eg.Wait()
}

func writeArtifact(path string, src io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "can't create artifact")
	}

	bw := bufio.NewWriter(f)
	defer func() {
		ferr := bw.Flush()
		cerr := f.Close()
		if err == nil {
			err = ferr
		}
		if err == nil {
			err = cerr
		}
		if err != nil {
			err = errors.Wrapf(err, "can't write %s", path)
		}
	}()

	n, err := src.WriteTo(bw)
	if err != nil {
		return err
	}

	log.ModGen.WithField("path", path).Infof("%d bytes written", n)
	return nil
}
