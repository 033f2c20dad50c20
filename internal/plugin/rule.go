package plugin

import (
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/span"
)

// GroupRule is one plugin's rules collapsed into a single linter.Rule: the
// runner calls RunOnce exactly once per registered rule, and a plugin's
// rule_ids/option_ids are meant to travel together in one lint_file round
// trip (§4.7), so batching a plugin's active rules behind one Rule avoids
// one round trip per rule. Each returned diagnostic keeps the originating
// plugin rule's own qualified name rather than GroupRule's.
type GroupRule struct {
	linter.Base

	manager     *Manager
	pluginName  string
	ruleIDs     []uint32
	optionIDs   []uint32
	severityFor map[string]linter.Severity // qualified rule name -> configured severity
}

// NewGroupRule builds the proxy for one plugin's currently-enabled rules.
// severityFor supplies the configured severity per qualified rule name
// ("plugin/rule"), used when a plugin-reported diagnostic's own severity
// string fails to parse.
func NewGroupRule(manager *Manager, pluginName string, ruleIDs, optionIDs []uint32, severityFor map[string]linter.Severity) *GroupRule {
	return &GroupRule{manager: manager, pluginName: pluginName, ruleIDs: ruleIDs, optionIDs: optionIDs, severityFor: severityFor}
}

func (g *GroupRule) Metadata() linter.Metadata {
	return linter.Metadata{
		Name:            g.pluginName,
		Category:        linter.CategoryStyle,
		DefaultSeverity: linter.SeverityWarning,
	}
}

func (g *GroupRule) RunOnce(ctx *linter.Context) {
	req := LintFileRequest{
		Path:      ctx.Path,
		BufferID:  ctx.BufferID,
		Buffer:    ctx.Buffer,
		RuleIDs:   g.ruleIDs,
		OptionIDs: g.optionIDs,
		Settings:  ctx.Settings,
		Globals:   ctx.Globals,
	}
	diags, err := g.manager.LintFile(req)
	if err != nil {
		ctx.Diagnostic(linter.Diagnostic{
			RuleID:  g.pluginName,
			Message: "plugin bridge error: " + err.Error(),
		})
		return
	}
	for _, d := range diags {
		sev, ok := parseSeverity(d.Severity)
		if !ok {
			sev = g.configuredSeverity(d.RuleID)
		}
		ctx.Diagnostic(linter.Diagnostic{
			RuleID:   d.RuleID,
			Severity: sev,
			Message:  d.Message,
			Primary:  linter.Label{Span: span.New(d.Start, d.End)},
			Help:     d.Help,
		})
	}
}

// configuredSeverity falls back to whatever severity the plugin's rule was
// configured at when the wire diagnostic's own severity string doesn't
// parse, rather than silently defaulting every unparseable one to warning.
func (g *GroupRule) configuredSeverity(ruleID string) linter.Severity {
	if sev, ok := g.severityFor[ruleID]; ok {
		return sev
	}
	return linter.SeverityWarning
}

func parseSeverity(s string) (linter.Severity, bool) {
	switch s {
	case "off":
		return linter.SeverityOff, true
	case "hint":
		return linter.SeverityHint, true
	case "warning", "warn":
		return linter.SeverityWarning, true
	case "error":
		return linter.SeverityError, true
	default:
		return linter.SeverityOff, false
	}
}
