package gen

import (
	"bytes"
	"go/format"
	"io"
	"iter"

	"github.com/go-faster/errors"
)

// Stub is an unimplemented instruction handler.
type Stub struct {
	Name     string // lower-cased mnemonic
	Mnemonic string
}

// StubSet holds one handler stub per distinct mnemonic, in order of first
// appearance in the instruction list.
type StubSet struct {
	Stubs []Stub

	dialect  Dialect
	receiver string
}

// Lines returns an iterator over the stub definitions, each followed by an
// empty line.
func (s *StubSet) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, stub := range s.Stubs {
			if !yield(s.dialect.stub(stub.Name, s.receiver)) {
				return
			}
		}
	}
}

// WriteTo writes the stub definitions to w. Go stubs are gofmt'ed first, if
// that fails the unformatted source is written and the error is returned.
//
// Implements io.WriterTo
func (s *StubSet) WriteTo(w io.Writer) (int64, error) {
	if s.dialect != Go {
		return writeLines(w, s.Lines())
	}

	var buf bytes.Buffer
	if _, err := writeLines(&buf, s.Lines()); err != nil {
		return 0, err
	}

	src, ferr := format.Source(buf.Bytes())
	if ferr != nil {
		src = buf.Bytes()
	}

	n, err := w.Write(src)
	if err != nil {
		return int64(n), err
	}
	if ferr != nil {
		return int64(n), errors.Wrap(ferr, "gofmt failed")
	}
	return int64(n), nil
}
