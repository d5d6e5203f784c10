package isa

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"isagen/log"
)

// DecodeTOML decodes a TOML instruction-set description from r. It accepts
// the same fields as the JSON form.
func DecodeTOML(r io.Reader) (*Description, error) {
	desc := new(Description)
	md, err := toml.NewDecoder(r).Decode(desc)
	if err != nil {
		return nil, &DecodeError{Format: "toml", Err: err}
	}

	for _, f := range requiredFields {
		if !md.IsDefined(f) {
			return nil, &DecodeError{Format: "toml", Err: errors.Errorf("missing field %q", f)}
		}
	}
	for _, key := range md.Undecoded() {
		log.ModISA.Debugf("skipping unknown field %q", key.String())
	}
	return desc, nil
}
