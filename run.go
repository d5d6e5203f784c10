package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/davecgh/go-spew/spew"

	"isagen/gen"
	"isagen/isa"
	"isagen/log"
)

// generateMain writes the instruction table and handler stubs.
func generateMain(cfg gen.Config, args Generate) {
	if args.In != "" {
		cfg.Paths.Description = args.In
	}
	if args.Table != "" {
		cfg.Paths.Table = args.Table
	}
	if args.Stubs != "" {
		cfg.Paths.Stubs = args.Stubs
	}
	if args.Dialect != "" {
		d, err := gen.ParseDialect(args.Dialect)
		checkf(err, "invalid --dialect")
		cfg.Stubs.Dialect = d
	}

	desc := loadDescription(cfg.Paths.Description)
	err := gen.New(cfg).Generate(desc, cfg.Paths.Table, cfg.Paths.Stubs)
	checkf(err, "failed to generate")

	log.ModCLI.WithFields(log.Fields{
		"table": cfg.Paths.Table,
		"stubs": cfg.Paths.Stubs,
	}).Info("generation complete")
}

// checkMain validates a description and prints a summary to w.
func checkMain(w io.Writer, cfg gen.Config, args Check) {
	path := cfg.Paths.Description
	if args.Path != "" {
		path = args.Path
	}

	desc := loadDescription(path)
	g := gen.New(cfg)
	_, err := g.Table(desc)
	checkf(err, "failed to build instruction table")
	stubs, err := g.Stubs(desc)
	checkf(err, "failed to build handler stubs")

	fmt.Fprintf(w, "%s: %d instructions, %d invalid opcodes, %d mnemonics, %d addressing modes\n",
		path, len(desc.Instructions), len(desc.InvalidOpcodes), len(stubs.Stubs), len(desc.AddressingModes))
}

// dumpMain pretty-prints a description, or the instruction table rows built
// from it.
func dumpMain(cfg gen.Config, args Dump) {
	path := cfg.Paths.Description
	if args.Path != "" {
		path = args.Path
	}

	desc, err := isa.Open(path)
	checkf(err, "failed to load instruction-set description")

	if !args.Rows {
		spew.Fdump(os.Stdout, desc)
		return
	}

	tbl, err := gen.New(cfg).Table(desc)
	checkf(err, "failed to build instruction table")
	spew.Fdump(os.Stdout, tbl.Rows)
}

func initConfigMain(cfg gen.Config, args InitConfig) {
	checkf(gen.SaveConfig(args.Out, cfg), "failed to write configuration")
	fmt.Println("configuration written to", args.Out)
}

func loadDescription(path string) *isa.Description {
	desc, err := isa.Open(path)
	checkf(err, "failed to load instruction-set description")
	checkf(desc.Validate(), "invalid instruction-set description %s", path)
	return desc
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
