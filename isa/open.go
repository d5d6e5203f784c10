package isa

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"isagen/log"
)

// Open loads an instruction-set description from file. Files with a .toml
// extension are decoded as TOML, anything else as JSON.
func Open(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open description")
	}
	defer f.Close()

	decode := DecodeJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decode = DecodeTOML
	}

	desc, err := decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	log.ModISA.WithFields(log.Fields{
		"path":         path,
		"instructions": len(desc.Instructions),
		"invalid":      len(desc.InvalidOpcodes),
		"modes":        len(desc.AddressingModes),
	}).Debug("description loaded")
	return desc, nil
}
