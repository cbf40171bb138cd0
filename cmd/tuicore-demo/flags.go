// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --tick, --fps, --mouse, --paste, --headless, --config, --log

package main

import "flag"

type cliArgs struct {
	tick     float64
	fps      float64
	mouse    bool
	paste    bool
	headless bool
	config   string
	logFile  string
	verbose  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.Float64Var(&args.tick, "tick", 0, "Tick rate in ticks per second (0 = config/default)")
	flag.Float64Var(&args.fps, "fps", 0, "Render rate in frames per second (0 = config/default)")
	flag.BoolVar(&args.mouse, "mouse", false, "Enable mouse capture")
	flag.BoolVar(&args.paste, "paste", false, "Enable bracketed paste")
	flag.BoolVar(&args.headless, "headless", false, "Run without a terminal (inert session)")
	flag.StringVar(&args.config, "config", "", "Explicit config file (default: merged global + project)")
	flag.StringVar(&args.logFile, "log", "", "Log file path (default: stderr)")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")

	flag.Parse()
	return args
}
