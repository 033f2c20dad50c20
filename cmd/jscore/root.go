// Package main is the jscore command-line shell: a thin spf13/cobra tree
// (§2.4) exposing parse/lint/minify subcommands that each wire a single
// resolved config.Config and a list of file paths through the core
// packages. It deliberately does not walk directories, resolve ignore
// patterns, or format diffs/fixes (§2.4's own non-goals); every path it
// prints comes straight from os.Args. Command wiring is grounded on
// playbymail-ottomap's main.go (the pack's own cobra user): package-level
// *cobra.Command vars, a single Execute() function adding them
// to the root, and PersistentPreRunE/PersistentPostRunE for logger setup
// and flush. The parse/lint/minify subcommand split itself generalizes
// funvibe-funxy/cmd/funxy's own compile/run/test verb set, even though
// funxy's own CLI dispatches on os.Args directly rather than through
// cobra.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jscore-dev/jscore/internal/jlog"
)

var argsRoot struct {
	configPath string
	verbose    bool
}

var cmdRoot = &cobra.Command{
	Use:   "jscore",
	Short: "Root command for the jscore toolchain",
	Long:  `jscore parses, lints, and minifies JavaScript, TypeScript, and JSX sources.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		if !argsRoot.verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		jlog.Install(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return jlog.Sync()
	},
}

// Execute wires every subcommand into the root and runs it. Kept separate
// from main so tests can build the command tree without os.Exit-ing.
func Execute() error {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.configPath, "config", "", "path to a jscore config file (JSON or YAML)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.verbose, "verbose", false, "enable debug logging")

	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdLint)
	cmdRoot.AddCommand(cmdMinify)

	return cmdRoot.Execute()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
