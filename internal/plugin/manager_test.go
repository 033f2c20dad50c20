package plugin_test

import (
	"errors"
	"testing"

	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge is an in-process Bridge standing in for a foreign runtime: no
// subprocess, no serialization, just call counting and scripted responses —
// enough to exercise Manager's caching, versioning, and request shape without
// an actual external process.
type fakeBridge struct {
	loadCalls int
	lastReq   plugin.LintFileRequest

	loadResult plugin.LoadPluginResult
	loadErr    error
	lintResult plugin.LintFileResult
	lintErr    error
}

func (f *fakeBridge) LoadPlugin(url, name string, nameIsAlias bool) (plugin.LoadPluginResult, error) {
	f.loadCalls++
	return f.loadResult, f.loadErr
}

func (f *fakeBridge) SetupRuleConfigs(optionsJSON []byte) error { return nil }

func (f *fakeBridge) LintFile(req plugin.LintFileRequest) (plugin.LintFileResult, error) {
	f.lastReq = req
	return f.lintResult, f.lintErr
}

func (f *fakeBridge) CreateWorkspace(dir string) error { return nil }
func (f *fakeBridge) DestroyWorkspace(dir string)       {}

func TestManagerLoadCachesByURL(t *testing.T) {
	bridge := &fakeBridge{
		loadResult: plugin.LoadPluginResult{OK: &plugin.PluginMeta{Name: "eslint-plugin-demo"}},
	}
	mgr := plugin.NewManager(bridge)

	meta1, err := mgr.Load("https://example.invalid/demo.wasm", "demo", false)
	require.NoError(t, err)
	meta2, err := mgr.Load("https://example.invalid/demo.wasm", "demo", false)
	require.NoError(t, err)

	assert.Same(t, meta1, meta2)
	assert.Equal(t, 1, bridge.loadCalls, "second Load for the same url must not re-invoke the bridge")
}

func TestManagerLoadRejectsNewerBridgeVersion(t *testing.T) {
	bridge := &fakeBridge{
		loadResult: plugin.LoadPluginResult{OK: &plugin.PluginMeta{
			Name:             "future-plugin",
			MinBridgeVersion: "v9.0.0",
		}},
	}
	mgr := plugin.NewManager(bridge)

	_, err := mgr.Load("https://example.invalid/future.wasm", "future", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires bridge protocol")
}

func TestManagerLoadSurfacesBridgeFailure(t *testing.T) {
	bridge := &fakeBridge{loadResult: plugin.LoadPluginResult{Error: "module not found"}}
	mgr := plugin.NewManager(bridge)

	_, err := mgr.Load("https://example.invalid/missing.wasm", "missing", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module not found")
}

func TestManagerLintFilePropagatesTransportError(t *testing.T) {
	bridge := &fakeBridge{lintErr: errors.New("pipe closed")}
	mgr := plugin.NewManager(bridge)

	_, err := mgr.LintFile(plugin.LintFileRequest{Path: "a.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestGroupRuleForwardsWireDiagnosticsUnmodified(t *testing.T) {
	bridge := &fakeBridge{
		lintResult: plugin.LintFileResult{OK: []plugin.WireDiagnostic{
			{RuleID: "demo/no-foo", Severity: "error", Message: "found a foo", Start: 3, End: 6},
		}},
	}
	mgr := plugin.NewManager(bridge)
	rule := plugin.NewGroupRule(mgr, "demo", []uint32{1}, nil, nil)

	reg := linter.NewRegistry()
	reg.Register(rule)
	diags := reg.Lint(nil, nil, linter.Options{Path: "a.js", BufferID: "buf-1"})

	require.Len(t, diags, 1)
	assert.Equal(t, "demo/no-foo", diags[0].RuleID)
	assert.Equal(t, linter.SeverityError, diags[0].Severity)
	assert.Equal(t, "a.js", bridge.lastReq.Path)
	assert.Equal(t, "buf-1", bridge.lastReq.BufferID)
}

func TestGroupRuleFallsBackToConfiguredSeverity(t *testing.T) {
	bridge := &fakeBridge{
		lintResult: plugin.LintFileResult{OK: []plugin.WireDiagnostic{
			{RuleID: "demo/no-bar", Severity: "unknown-tier", Message: "found a bar", Start: 0, End: 1},
		}},
	}
	mgr := plugin.NewManager(bridge)
	rule := plugin.NewGroupRule(mgr, "demo", []uint32{2}, nil, map[string]linter.Severity{
		"demo/no-bar": linter.SeverityHint,
	})

	reg := linter.NewRegistry()
	reg.Register(rule)
	diags := reg.Lint(nil, nil, linter.Options{Path: "a.js"})

	require.Len(t, diags, 1)
	assert.Equal(t, linter.SeverityHint, diags[0].Severity)
}
