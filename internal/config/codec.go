package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireConfig mirrors the JSON config file shape of §6.1 ("extends",
// "ignorePatterns" are resolution-time concerns the excluded CLI config-
// discovery layer handles, so they have no field here; a raw config file
// carrying them simply has those keys ignored by Unmarshal).
type wireConfig struct {
	Rules     map[string]RuleSetting `json:"rules" yaml:"rules"`
	Plugins   []string               `json:"plugins" yaml:"plugins"`
	Settings  map[string]any         `json:"settings" yaml:"settings"`
	Env       []string               `json:"env" yaml:"env"`
	Globals   map[string]any         `json:"globals" yaml:"globals"`
	Overrides []wireOverride         `json:"overrides" yaml:"overrides"`
}

type wireOverride struct {
	Files []string               `json:"files" yaml:"files"`
	Rules map[string]RuleSetting `json:"rules" yaml:"rules"`
}

func (w *wireConfig) toConfig() *Config {
	cfg := NewConfig()
	for name, rs := range w.Rules {
		cfg.Rules[name] = rs
	}
	for k, v := range w.Settings {
		cfg.Settings[k] = v
	}
	for name, v := range w.Globals {
		cfg.Globals[name] = globalIsWritable(v)
	}
	cfg.Plugins = append(cfg.Plugins, w.Plugins...)
	cfg.Env = append(cfg.Env, w.Env...)
	for _, o := range w.Overrides {
		ov := Override{Files: o.Files, Rules: make(map[string]RuleSetting, len(o.Rules))}
		for name, rs := range o.Rules {
			ov.Rules[name] = rs
		}
		cfg.Overrides = append(cfg.Overrides, ov)
	}
	return cfg
}

// globalIsWritable interprets one `globals` entry's value the way ESLint's
// config format does: `true`/"writable" marks the global assignable,
// `false`/"readonly" (or anything else) marks it read-only.
func globalIsWritable(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "writable"
	default:
		return false
	}
}

// FromJSON decodes a single config file's JSON bytes into a Config. It does
// not resolve "extends" or evaluate "ignorePatterns" (§2.3 — that remains
// the excluded CLI config-discovery layer's job); this is a pure decode of
// one already-located file.
func FromJSON(data []byte) (*Config, error) {
	var w wireConfig
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("config: decode json: %w", err)
	}
	return w.toConfig(), nil
}

// FromYAML is FromJSON's YAML counterpart, used for embedding scenarios and
// fixtures the way funvibe-funxy's own internal/ext package decodes
// funxy.yaml via gopkg.in/yaml.v3.
func FromYAML(data []byte) (*Config, error) {
	var w wireConfig
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	return w.toConfig(), nil
}

// UnmarshalJSON accepts either a bare severity string ("error") or a
// `[severity, options...]` array (§6.1's "map rule-name → severity or
// [severity, options…]").
func (rs *RuleSetting) UnmarshalJSON(data []byte) error {
	var sevOnly string
	if err := json.Unmarshal(data, &sevOnly); err == nil {
		sev, ok := ParseSeverity(sevOnly)
		if !ok {
			return fmt.Errorf("config: unknown severity %q", sevOnly)
		}
		rs.Severity = sev
		rs.Options = nil
		return nil
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("config: rule setting must be a severity string or an array: %w", err)
	}
	if len(tuple) == 0 {
		return fmt.Errorf("config: rule setting array must have at least a severity")
	}
	if err := json.Unmarshal(tuple[0], &sevOnly); err != nil {
		return fmt.Errorf("config: rule setting array's first element must be a severity string: %w", err)
	}
	sev, ok := ParseSeverity(sevOnly)
	if !ok {
		return fmt.Errorf("config: unknown severity %q", sevOnly)
	}
	rs.Severity = sev
	rs.Options = make([]any, 0, len(tuple)-1)
	for _, raw := range tuple[1:] {
		var opt any
		if err := json.Unmarshal(raw, &opt); err != nil {
			return fmt.Errorf("config: decode rule option: %w", err)
		}
		rs.Options = append(rs.Options, opt)
	}
	return nil
}

// MarshalJSON emits the same bare-string-or-array shape UnmarshalJSON
// accepts, preferring the compact string form when there are no options.
func (rs RuleSetting) MarshalJSON() ([]byte, error) {
	if len(rs.Options) == 0 {
		return json.Marshal(rs.Severity.String())
	}
	tuple := make([]any, 0, len(rs.Options)+1)
	tuple = append(tuple, rs.Severity.String())
	tuple = append(tuple, rs.Options...)
	return json.Marshal(tuple)
}

// UnmarshalYAML mirrors UnmarshalJSON's union shape for YAML documents: a
// scalar severity node or a sequence node of [severity, options...].
func (rs *RuleSetting) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var sevOnly string
		if err := value.Decode(&sevOnly); err != nil {
			return err
		}
		sev, ok := ParseSeverity(sevOnly)
		if !ok {
			return fmt.Errorf("config: unknown severity %q", sevOnly)
		}
		rs.Severity = sev
		rs.Options = nil
		return nil
	}

	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return fmt.Errorf("config: rule setting must be a severity scalar or a sequence")
	}
	var sevOnly string
	if err := value.Content[0].Decode(&sevOnly); err != nil {
		return fmt.Errorf("config: rule setting sequence's first element must be a severity scalar: %w", err)
	}
	sev, ok := ParseSeverity(sevOnly)
	if !ok {
		return fmt.Errorf("config: unknown severity %q", sevOnly)
	}
	rs.Severity = sev
	rs.Options = make([]any, 0, len(value.Content)-1)
	for _, n := range value.Content[1:] {
		var opt any
		if err := n.Decode(&opt); err != nil {
			return fmt.Errorf("config: decode rule option: %w", err)
		}
		rs.Options = append(rs.Options, opt)
	}
	return nil
}
