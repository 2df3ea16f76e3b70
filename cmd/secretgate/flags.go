package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	GlobalConfigFile string
	Verbose          bool
	NoColor          bool
}

func ParseFlags(args []string) (AppFlags, error) {
	fs := flag.NewFlagSet("secretgate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: secretgate [-config path] [-verbose] [-no-color]")
		fmt.Fprintln(fs.Output(), "Scans staged files for verified secrets before a commit.")
		fs.PrintDefaults()
	}

	globalConfigFile := fs.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	verbose := fs.Bool("verbose", false, "Enable debug logging")
	verboseAlias := fs.Bool("v", false, "Alias for -verbose")

	noColor := fs.Bool("no-color", false, "Disable coloured output")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		Verbose: *verbose || *verboseAlias,
		NoColor: *noColor,
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	return flags, nil
}
