package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"isagen/gen"
	"isagen/log"
)

func main() {
	args := parseArgs(os.Args[1:])

	if args.LogFile != nil {
		log.SetOutput(args.LogFile)
		atexit.Register(func() { args.LogFile.Close() })
	}

	cfg, err := gen.LoadConfig(args.Config)
	checkf(err, "failed to load configuration")

	switch args.mode {
	case generateMode:
		generateMain(cfg, args.Generate)
	case checkMode:
		checkMain(os.Stdout, cfg, args.Check)
	case dumpMode:
		dumpMain(cfg, args.Dump)
	case initConfigMode:
		initConfigMain(cfg, args.InitConfig)
	case versionMode:
		fmt.Println("isagen", version())
	}

	atexit.Exit(0)
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf("%s.\n\t%s", fmt.Sprintf(format, args...), err)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	atexit.Exit(1)
}
