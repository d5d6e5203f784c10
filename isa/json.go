package isa

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"isagen/log"
)

var requiredFields = []string{"invalid_opcodes", "instructions", "addressing_modes"}

// DecodeJSON decodes a JSON instruction-set description from r. Unknown
// fields are ignored.
func DecodeJSON(r io.Reader) (*Description, error) {
	desc := new(Description)
	seen := make(map[string]bool, 5)

	d := jx.Decode(r, 4096)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "invalid_opcodes":
			desc.InvalidOpcodes, err = decodeStrings(d)
		case "instructions":
			desc.Instructions, err = decodeStrings(d)
		case "addressing_modes":
			desc.AddressingModes, err = decodeStringMap(d)
		case "cycles":
			desc.Cycles = []uint8{}
			err = d.Arr(func(d *jx.Decoder) error {
				n, err := d.UInt8()
				desc.Cycles = append(desc.Cycles, n)
				return err
			})
		case "page_penalty":
			desc.PagePenalty = []bool{}
			err = d.Arr(func(d *jx.Decoder) error {
				b, err := d.Bool()
				desc.PagePenalty = append(desc.PagePenalty, b)
				return err
			})
		default:
			log.ModISA.Debugf("skipping unknown field %q", key)
			return d.Skip()
		}
		seen[key] = true
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Format: "json", Err: errors.New("unexpected data after description object")}
	}

	for _, f := range requiredFields {
		if !seen[f] {
			return nil, &DecodeError{Format: "json", Err: errors.Errorf("missing field %q", f)}
		}
	}
	return desc, nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	strs := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		strs = append(strs, s)
		return nil
	})
	return strs, err
}

func decodeStringMap(d *jx.Decoder) (map[string]string, error) {
	m := make(map[string]string)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		s, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "key %q", key)
		}
		m[key] = s
		return nil
	})
	return m, err
}
