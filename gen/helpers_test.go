package gen

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"isagen/isa"
)

var update = flag.Bool("update", false, "update golden files")

/* general testing helpers */

func tcheck(tb testing.TB, err error) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s\n", err)
}

func loadDescription(tb testing.TB, name string) *isa.Description {
	tb.Helper()

	desc, err := isa.Open(filepath.Join("testdata", name))
	tcheck(tb, err)
	tcheck(tb, desc.Validate())
	return desc
}

// render returns what wt writes.
func render(tb testing.TB, wt io.WriterTo) string {
	tb.Helper()

	var buf bytes.Buffer
	_, err := wt.WriteTo(&buf)
	tcheck(tb, err)
	return buf.String()
}

// wantGolden compares got with the content of testdata/name.golden, or
// overwrites the golden file with -update.
func wantGolden(tb testing.TB, name string, got []byte) {
	tb.Helper()

	path := filepath.Join("testdata", name+".golden")
	if *update {
		tcheck(tb, os.WriteFile(path, got, 0644))
		return
	}

	want, err := os.ReadFile(path)
	tcheck(tb, err)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		tb.Errorf("%s mismatch (-want +got):\n%s", path, diff)
	}
}

// numberedDescription returns a well-formed description in which the given
// opcodes are invalid and the k-th instruction is "Ikk imm" (kk in hex).
func numberedDescription(invalid ...string) *isa.Description {
	desc := &isa.Description{
		InvalidOpcodes:  invalid,
		AddressingModes: map[string]string{"imm": "Immediate", "impl": "Implied"},
	}
	for k := range isa.NumOpcodes - len(invalid) {
		desc.Instructions = append(desc.Instructions, fmt.Sprintf("I%02X imm", k))
	}
	return desc
}

func defaultGenerator() *Generator {
	return New(DefaultConfig)
}
