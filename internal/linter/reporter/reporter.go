// Package reporter is a small terminal formatter for linter.Diagnostic
// slices, built for cmd/jscore's demonstration output rather than as the
// full CLI formatter (§2.4 — diff/fix-output formatting is explicitly out
// of the core's scope). Color gating follows funvibe-funxy's own
// isatty.IsTerminal-or-IsCygwinTerminal check on the destination file
// descriptor.
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/span"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGray   = "\x1b[90m"
)

// IsColorTerminal reports whether w is a terminal ANSI output should be
// written to, the same pair of checks funvibe-funxy's own termio helpers
// use on *os.File.
func IsColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Write prints one line per diagnostic found in path's source, in
// "path:line:col: severity ruleID: message" form, followed by its Help text
// (if any) indented on the next line. color enables ANSI severity coloring.
func Write(w io.Writer, path string, source []byte, diags []linter.Diagnostic, color bool) {
	sm := span.NewSourceMap(string(source))
	for _, d := range diags {
		pos := sm.Position(d.Primary.Span.Start)
		sev := d.Severity.String()
		rule := d.RuleID
		if color {
			fmt.Fprintf(w, "%s%s:%d:%d%s: %s%s%s %s%s%s: %s\n",
				ansiBold, path, pos.Line, pos.Column, ansiReset,
				severityColor(d.Severity), sev, ansiReset,
				ansiCyan, rule, ansiReset,
				d.Message)
		} else {
			fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, pos.Line, pos.Column, sev, rule, d.Message)
		}
		if d.Help != "" {
			if color {
				fmt.Fprintf(w, "  %shelp:%s %s\n", ansiGray, ansiReset, d.Help)
			} else {
				fmt.Fprintf(w, "  help: %s\n", d.Help)
			}
		}
	}
}

func severityColor(sev linter.Severity) string {
	switch sev {
	case linter.SeverityError:
		return ansiRed
	case linter.SeverityWarning:
		return ansiYellow
	default:
		return ansiGray
	}
}

// Summarize counts diags by severity (errors, warnings, hints; Off is not
// counted), the totals cmd/jscore's `lint` subcommand prints in its
// --stats summary line after its per-file output.
func Summarize(diags []linter.Diagnostic) (errors, warnings, hints int) {
	for _, d := range diags {
		switch d.Severity {
		case linter.SeverityError:
			errors++
		case linter.SeverityWarning:
			warnings++
		case linter.SeverityHint:
			hints++
		}
	}
	return
}
