package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jscore-dev/jscore/internal/cache"
	"github.com/jscore-dev/jscore/internal/config"
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/linter/reporter"
	"github.com/jscore-dev/jscore/internal/rules"
	"github.com/jscore-dev/jscore/internal/schedule"
)

var argsLint struct {
	cachePath string
	jobs      int
	stats     bool
}

var cmdLint = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Lint one or more files against the built-in rule set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, paths []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		reg := linter.NewRegistry()
		for _, r := range rules.All() {
			if cfg.Rules[r.Metadata().Name].Severity == config.SeverityOff && hasExplicitSetting(cfg, r.Metadata().Name) {
				continue
			}
			reg.Register(r)
		}

		driver := &schedule.Driver{Registry: reg, Concurrency: argsLint.jobs}
		if argsLint.cachePath != "" {
			c, err := cache.Open(argsLint.cachePath)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer c.Close()
			driver.Cache = c
			driver.RuleSetHash = ruleSetHash(reg)
		}

		files := make([]schedule.File, 0, len(paths))
		sources := make(map[string][]byte, len(paths))
		for _, p := range paths {
			raw, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			sources[p] = raw
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(p), "."))
			files = append(files, schedule.File{Path: p, Ext: ext, Source: raw})
		}

		results, err := driver.Run(context.Background(), files)
		if err != nil {
			return fmt.Errorf("lint: %w", err)
		}

		color := reporter.IsColorTerminal(os.Stdout)
		var all []linter.Diagnostic
		hadErr := false
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
				hadErr = true
				continue
			}
			diags := applySeverityOverrides(res.Diagnostics, cfg)
			reporter.Write(os.Stdout, res.Path, sources[res.Path], diags, color)
			all = append(all, diags...)
		}

		errs, warns, hints := reporter.Summarize(all)
		if argsLint.stats {
			fmt.Printf("%s files, %s errors, %s warnings, %s hints\n",
				humanize.Comma(int64(len(paths))), humanize.Comma(int64(errs)),
				humanize.Comma(int64(warns)), humanize.Comma(int64(hints)))
		}
		if errs > 0 || hadErr {
			cmd.SilenceUsage = true
			return fmt.Errorf("lint found %d error(s)", errs)
		}
		return nil
	},
}

func init() {
	cmdLint.Flags().StringVar(&argsLint.cachePath, "cache", "", "path to a sqlite diagnostics cache")
	cmdLint.Flags().IntVar(&argsLint.jobs, "jobs", 0, "maximum concurrent files (0 = unbounded)")
	cmdLint.Flags().BoolVar(&argsLint.stats, "stats", false, "print a humanized summary line")
}

func hasExplicitSetting(cfg *config.Config, name string) bool {
	_, ok := cfg.Rules[name]
	return ok
}

// applySeverityOverrides remaps each diagnostic's severity to the loaded
// config's override for its rule, since internal/linter.Registry itself
// stamps a rule's own Metadata().DefaultSeverity on every diagnostic that
// leaves Severity unset (§4.7 has no
// config-aware severity concept; that mapping is this CLI's job, not the
// core engine's).
func applySeverityOverrides(diags []linter.Diagnostic, cfg *config.Config) []linter.Diagnostic {
	if len(cfg.Rules) == 0 {
		return diags
	}
	out := make([]linter.Diagnostic, 0, len(diags))
	for _, d := range diags {
		setting, ok := cfg.Rules[d.RuleID]
		if !ok {
			out = append(out, d)
			continue
		}
		if setting.Severity == config.SeverityOff {
			continue
		}
		d.Severity = toLinterSeverity(setting.Severity)
		out = append(out, d)
	}
	return out
}

func toLinterSeverity(s config.Severity) linter.Severity {
	switch s {
	case config.SeverityError:
		return linter.SeverityError
	case config.SeverityWarn:
		return linter.SeverityWarning
	case config.SeverityHint:
		return linter.SeverityHint
	default:
		return linter.SeverityOff
	}
}

// ruleSetHash identifies the active rule set for internal/cache's
// (RuleSetHash, sourceHash) key, so a config change that adds or removes
// a rule invalidates cached diagnostics even though neither half of
// cache.HashBytes' own hash ever sees the rule set.
func ruleSetHash(reg *linter.Registry) string {
	var names []string
	for _, r := range reg.Rules() {
		names = append(names, r.Metadata().QualifiedName())
	}
	return cache.HashBytes([]byte(strings.Join(names, ",")))
}
