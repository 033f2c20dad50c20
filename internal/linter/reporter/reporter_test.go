package reporter_test

import (
	"strings"
	"testing"

	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/linter/reporter"
	"github.com/jscore-dev/jscore/internal/span"
)

func TestWritePlainFormatsPathLineColSeverityRuleMessage(t *testing.T) {
	src := []byte("line one\ndebugger;\n")
	diags := []linter.Diagnostic{
		{
			RuleID:   "no-debugger",
			Severity: linter.SeverityError,
			Message:  "unexpected 'debugger' statement",
			Primary:  linter.Label{Span: span.New(9, 18)},
			Help:     "remove the debugger statement",
		},
	}

	var buf strings.Builder
	reporter.Write(&buf, "file.js", src, diags, false)
	out := buf.String()

	if !strings.Contains(out, "file.js:2:1: error no-debugger: unexpected 'debugger' statement") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "help: remove the debugger statement") {
		t.Fatalf("want a help line, got %q", out)
	}
}

func TestWriteColoredIncludesAnsiEscapes(t *testing.T) {
	src := []byte("debugger;")
	diags := []linter.Diagnostic{
		{RuleID: "no-debugger", Severity: linter.SeverityWarning, Message: "m", Primary: linter.Label{Span: span.New(0, 9)}},
	}

	var buf strings.Builder
	reporter.Write(&buf, "f.js", src, diags, true)
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("want an ANSI escape in colored output, got %q", buf.String())
	}
}

func TestSummarizeCountsBySeverity(t *testing.T) {
	diags := []linter.Diagnostic{
		{Severity: linter.SeverityError},
		{Severity: linter.SeverityError},
		{Severity: linter.SeverityWarning},
		{Severity: linter.SeverityHint},
		{Severity: linter.SeverityOff},
	}
	errs, warns, hints := reporter.Summarize(diags)
	if errs != 2 || warns != 1 || hints != 1 {
		t.Fatalf("want (2,1,1), got (%d,%d,%d)", errs, warns, hints)
	}
}
