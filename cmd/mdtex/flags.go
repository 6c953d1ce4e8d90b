package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	config  string
	root    string
	assets  string
	output  string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("mdtex", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config name or path (searched in . and ~/.config/go-mdtex/)")
	fs.StringVar(&f.root, "root", "", "project file root (overrides config)")
	fs.StringVar(&f.assets, "assets", "", "assets directory (overrides config)")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress warnings and script reports")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
