package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"isagen/log"
)

type mode byte

const (
	generateMode   mode = iota // Generate table and stubs
	checkMode                  // Validate a description
	dumpMode                   // Dump a description
	initConfigMode             // Write configuration file
	versionMode                // Show isagen version
)

type (
	CLI struct {
		Generate   Generate   `cmd:"" help:"Generate the instruction table and handler stubs. (default command)" default:"withargs"`
		Check      Check      `cmd:"" help:"Check an instruction-set description."`
		Dump       Dump       `cmd:"" help:"Dump an instruction-set description."`
		InitConfig InitConfig `cmd:"" help:"Write the effective configuration to a file." name:"init-config"`
		Version    Version    `cmd:"" help:"Show isagen version."`

		Config  string     `name:"config" help:"${config_help}" type:"path" placeholder:"FILE"`
		Log     logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		LogFile *outfile   `name:"log-file" help:"Write logs to file." placeholder:"FILE|stdout|stderr"`

		mode mode
	}

	Generate struct {
		In      string `name:"in" help:"Instruction-set description (JSON or TOML)." type:"path" placeholder:"FILE"`
		Table   string `name:"table" help:"Instruction table output file." type:"path" placeholder:"FILE"`
		Stubs   string `name:"stubs" help:"Handler stubs output file." type:"path" placeholder:"FILE"`
		Dialect string `name:"dialect" help:"${dialect_help}" placeholder:"rust|go"`
	}

	Check struct {
		Path string `arg:"" name:"/path/to/description" help:"${descpath_help}" optional:"" type:"existingfile"`
	}

	Dump struct {
		Path string `arg:"" name:"/path/to/description" help:"${descpath_help}" optional:"" type:"existingfile"`
		Rows bool   `name:"rows" help:"Dump the instruction table rows instead."`
	}

	InitConfig struct {
		Out string `name:"out" help:"Configuration file to write." type:"path" default:"isagen.toml"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"config_help":   "Configuration file. (default: ./isagen.toml if it exists)",
	"log_help":      "Enable logging for specified modules.",
	"dialect_help":  "Language of the handler stubs.",
	"descpath_help": "Instruction-set description. (default: from configuration)",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("isagen"),
		kong.Description("Instruction table and handler stubs generator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch strings.Fields(ctx.Command())[0] {
	case "check":
		cfg.mode = checkMode
	case "dump":
		cfg.mode = dumpMode
	case "init-config":
		cfg.mode = initConfigMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = generateMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }
