package gen

import (
	"bytes"
	"go/parser"
	"go/token"
	"slices"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/go-cmp/cmp"

	"isagen/isa"
)

func TestStubsGolden(t *testing.T) {
	stubs, err := defaultGenerator().Stubs(loadDescription(t, "instructions.json"))
	tcheck(t, err)

	if len(stubs.Stubs) != 56 {
		t.Errorf("got %d stubs, want 56", len(stubs.Stubs))
	}
	wantGolden(t, "instruction_functions", []byte(render(t, stubs)))
}

func TestStubsFirstOccurrence(t *testing.T) {
	desc := &isa.Description{
		Instructions: []string{"LDA #", "STA abs", "LDA abs", "BRK impl", "STA zpg", "LDA zpg"},
	}
	stubs, err := defaultGenerator().Stubs(desc)
	tcheck(t, err)

	want := []Stub{
		{Name: "lda", Mnemonic: "LDA"},
		{Name: "sta", Mnemonic: "STA"},
		{Name: "brk", Mnemonic: "BRK"},
	}
	if diff := cmp.Diff(want, stubs.Stubs); diff != "" {
		t.Errorf("stubs mismatch (-want +got):\n%s", diff)
	}

	lines := slices.Collect(stubs.Lines())
	wantLines := []string{
		"pub fn lda(&mut self) {\n\ttodo!()\n}\n\n",
		"pub fn sta(&mut self) {\n\ttodo!()\n}\n\n",
		"pub fn brk(&mut self) {\n\ttodo!()\n}\n\n",
	}
	if diff := cmp.Diff(wantLines, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStubsMalformed(t *testing.T) {
	desc := &isa.Description{Instructions: []string{"LDA #", "STA"}}
	_, err := defaultGenerator().Stubs(desc)
	if !errors.Is(err, isa.ErrMalformed) {
		t.Fatalf("got error %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "instructions[1]") {
		t.Errorf("error %q doesn't locate the descriptor", err)
	}
}

func TestStubsGoDialect(t *testing.T) {
	cfg := DefaultConfig
	cfg.Stubs = StubsConfig{Dialect: Go, Receiver: "CPU"}

	stubs, err := New(cfg).Stubs(loadDescription(t, "instructions.json"))
	tcheck(t, err)

	src := render(t, stubs)
	if !strings.HasPrefix(src, "func (cpu *CPU) brk() {\n\tpanic(\"not implemented\")\n}\n\nfunc (cpu *CPU) ora() {") {
		t.Errorf("unexpected go stubs:\n%s", src[:min(len(src), 200)])
	}

	// The stubs must form valid Go declarations once a package clause is
	// added.
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "stubs.go", "package cpu\n\n"+src, 0)
	tcheck(t, err)
	if len(f.Decls) != len(stubs.Stubs) {
		t.Errorf("got %d declarations, want %d", len(f.Decls), len(stubs.Stubs))
	}
}

func TestStubsGoDialectWriteTo(t *testing.T) {
	stubs := &StubSet{
		Stubs:    []Stub{{Name: "lda", Mnemonic: "LDA"}},
		dialect:  Go,
		receiver: "CPU",
	}

	var buf bytes.Buffer
	n, err := stubs.WriteTo(&buf)
	tcheck(t, err)

	want := "func (cpu *CPU) lda() {\n\tpanic(\"not implemented\")\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("go stubs mismatch (-want +got):\n%s", diff)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
}

func TestStubsGoDialectFormatError(t *testing.T) {
	stubs := &StubSet{
		Stubs:    []Stub{{Name: "lda", Mnemonic: "LDA"}},
		dialect:  Go,
		receiver: "not a type",
	}

	var sb strings.Builder
	_, err := stubs.WriteTo(&sb)
	if err == nil {
		t.Fatalf("want a gofmt error")
	}
	if !strings.Contains(sb.String(), "func (not a type *not a type) lda()") {
		t.Errorf("unformatted source should still be written, got:\n%s", sb.String())
	}
}

func TestDialect(t *testing.T) {
	for _, d := range []Dialect{Rust, Go} {
		text, err := d.MarshalText()
		tcheck(t, err)

		var got Dialect
		tcheck(t, got.UnmarshalText(text))
		if got != d {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, d)
		}
	}

	if _, err := ParseDialect("c++"); err == nil {
		t.Errorf("ParseDialect(c++) should fail")
	}
	if got := Dialect(7).String(); got != "Dialect(7)" {
		t.Errorf("Dialect(7).String() = %q", got)
	}
}
