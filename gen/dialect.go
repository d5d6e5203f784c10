package gen

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

//go:generate go tool stringer -type=Dialect -linecomment

// Dialect is the language handler stubs are generated in.
type Dialect uint8

const (
	Rust Dialect = iota // rust
	Go                  // go
)

// stub returns the unimplemented definition of the handler 'name'.
func (d Dialect) stub(name, receiver string) string {
	switch d {
	case Go:
		return fmt.Sprintf("func (%s *%s) %s() {\n\tpanic(\"not implemented\")\n}\n\n",
			strings.ToLower(receiver), receiver, name)
	default:
		return fmt.Sprintf("pub fn %s(&mut self) {\n\ttodo!()\n}\n\n", name)
	}
}

// ParseDialect returns the dialect with the given name.
func ParseDialect(s string) (Dialect, error) {
	for d := Rust; d <= Go; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown stub dialect %q", s)
}

func (d *Dialect) UnmarshalText(text []byte) error {
	dd, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
