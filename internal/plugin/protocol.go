// Package plugin implements the core's side of the external plugin bridge
// (§4.7): the synchronous callback contract a foreign-runtime plugin host
// must expose, the zero-copy buffer protocol built on internal/arena's
// FixedChunk, and a Manager that loads plugins, gates them on a minimum
// bridge protocol version, and routes lint_file calls to them. Nothing
// here launches or speaks to an actual foreign process — that transport is
// the bridge implementation's job (§4.7 "Timeouts are the bridge's
// concern"); this package defines the contract and the bookkeeping around
// it, grounded on funvibe-funxy/internal/analyzer's plugin-registration
// shape generalized from an in-process Go interface to a cross-runtime one.
package plugin

import "github.com/jscore-dev/jscore/internal/linter"

// BridgeProtocolVersion is the bridge contract version this core speaks.
// A plugin manifest declares the minimum version it requires; Manager.Load
// refuses to load a plugin whose requirement exceeds this (§4.7, §6.3).
const BridgeProtocolVersion = "v1.0.0"

// RuleDescriptor is one rule a plugin exposes, as reported by load_plugin.
// ID is assigned by the plugin process itself (stable for the process's
// lifetime) and is what lint_file's rule_ids argument references — this
// core never renames or renumbers a plugin's own rule ids.
type RuleDescriptor struct {
	ID              uint32          `json:"id"`
	Name            string          `json:"name"`
	Category        linter.Category `json:"category"`
	DefaultSeverity string          `json:"default_severity"`
	Fix             string          `json:"fix"`
}

// PluginMeta is what a successful load_plugin call returns: the plugin's
// resolved name and the rules it hosts (§4.7).
type PluginMeta struct {
	Name           string           `json:"name"`
	MinBridgeVersion string         `json:"min_bridge_version"`
	Rules          []RuleDescriptor `json:"rules"`
}

// LoadPluginResult is the Success(PluginMeta) | Failure(string) envelope of
// §6.3, encoded as a discriminated JSON object rather than two separate
// wire shapes, so a single Go type round-trips through (de)serialization on
// either side of the bridge.
type LoadPluginResult struct {
	OK    *PluginMeta `json:"ok,omitempty"`
	Error string      `json:"error,omitempty"`
}

// WireDiagnostic is the JSON-safe form of a linter.Diagnostic crossing the
// bridge: spans are plain (start, end) uint32 pairs rather than
// internal/span.Span's richer in-process shape, and RuleID is namespaced
// by the plugin the same way a built-in rule's qualified name is.
type WireDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
	Help     string `json:"help,omitempty"`
}

// LintFileResult is the Success(Diagnostic[]) | Failure(string) envelope of
// §6.3 for one lint_file call.
type LintFileResult struct {
	OK    []WireDiagnostic `json:"ok,omitempty"`
	Error string           `json:"error,omitempty"`
}

// LintFileRequest is what the core sends to a plugin's lint_file callback.
// Buffer is nil on every call after the chunk's first send for this plugin
// process — the foreign runtime is expected to have cached it by BufferID
// (§4.7 zero-copy protocol).
type LintFileRequest struct {
	Path       string         `json:"path"`
	BufferID   string         `json:"buffer_id"`
	Buffer     []byte         `json:"buffer,omitempty"`
	RuleIDs    []uint32       `json:"rule_ids"`
	OptionIDs  []uint32       `json:"option_ids"`
	Settings   map[string]any `json:"settings"`
	Globals    map[string]bool `json:"globals"`
}
