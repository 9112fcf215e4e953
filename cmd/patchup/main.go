package main

import (
	"fmt"
	"os"

	"github.com/dstats/patchup"
	"github.com/dstats/patchup/info"
	"github.com/spf13/pflag"
)

func main() {
	dryrun := pflag.BoolP("dry-run", "n", false, "report substitutions without rewriting the file")
	rundir := pflag.StringP("directory", "C", "", "run from directory")
	quiet := pflag.BoolP("quiet", "q", false, "don't print substitution summaries")
	style := pflag.StringP("style", "s", "basic", "printer style to use (basic, steps, progress)")
	cache := pflag.String("cache", ".", "directory for the patch database ('$cache' uses the user cache dir)")
	tool := pflag.StringP("tool", "t", "", "run a tool (use '-t list' to list tools)")
	version := pflag.BoolP("version", "v", false, "show version information")
	help := pflag.BoolP("help", "h", false, "show this help message")

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		fmt.Println("patchup version", info.Version)
		os.Exit(0)
	}

	user, err := patchup.LoadConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "patchup: %s\n", err)
		os.Exit(1)
	}

	flags := patchup.Flags{
		DryRun:   *dryrun,
		RunDir:   *rundir,
		Quiet:    *quiet,
		Style:    *style,
		CacheDir: *cache,
		Tool:     *tool,
		ToolArgs: pflag.Args(),
	}
	applyUserFlags(&flags, user)

	_, err = patchup.Run(os.Stdout, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "patchup: %s\n", err)
		os.Exit(1)
	}
}

// Config file settings apply only where the flag was not given on the
// command line.
func applyUserFlags(flags *patchup.Flags, user patchup.UserFlags) {
	changed := pflag.CommandLine.Changed
	if user.DryRun != nil && !changed("dry-run") {
		flags.DryRun = *user.DryRun
	}
	if user.RunDir != nil && !changed("directory") {
		flags.RunDir = *user.RunDir
	}
	if user.Quiet != nil && !changed("quiet") {
		flags.Quiet = *user.Quiet
	}
	if user.Style != nil && !changed("style") {
		flags.Style = *user.Style
	}
	if user.CacheDir != nil && !changed("cache") {
		flags.CacheDir = *user.CacheDir
	}
}
