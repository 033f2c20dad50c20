package config_test

import (
	"testing"

	"github.com/jscore-dev/jscore/internal/config"
)

func TestFromJSONDecodesBareSeverityRules(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"rules": {"no-debugger": "error", "no-with": "off"}}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if cfg.Rules["no-debugger"].Severity != config.SeverityError {
		t.Fatalf("want no-debugger=error, got %v", cfg.Rules["no-debugger"].Severity)
	}
	if cfg.Rules["no-with"].Severity != config.SeverityOff {
		t.Fatalf("want no-with=off, got %v", cfg.Rules["no-with"].Severity)
	}
}

func TestFromJSONDecodesArrayFormRuleSettingWithOptions(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"rules": {"max-len": ["warn", {"code": 100}]}}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	rs := cfg.Rules["max-len"]
	if rs.Severity != config.SeverityWarn {
		t.Fatalf("want severity=warn, got %v", rs.Severity)
	}
	if len(rs.Options) != 1 {
		t.Fatalf("want 1 option, got %d", len(rs.Options))
	}
}

func TestFromJSONRejectsUnknownSeverity(t *testing.T) {
	if _, err := config.FromJSON([]byte(`{"rules": {"r": "bogus"}}`)); err == nil {
		t.Fatalf("want an error for an unknown severity")
	}
}

func TestFromJSONDecodesPluginsSettingsEnvGlobals(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{
		"plugins": ["eslint-plugin-react"],
		"settings": {"react": {"pragma": "h"}},
		"env": ["browser", "es2022"],
		"globals": {"window": "readonly", "myGlobal": true}
	}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if len(cfg.Plugins) != 1 || cfg.Plugins[0] != "eslint-plugin-react" {
		t.Fatalf("want 1 plugin, got %+v", cfg.Plugins)
	}
	if len(cfg.Env) != 2 {
		t.Fatalf("want 2 env entries, got %+v", cfg.Env)
	}
	if cfg.Globals["window"] {
		t.Fatalf("want window=readonly(false), got writable=true")
	}
	if !cfg.Globals["myGlobal"] {
		t.Fatalf("want myGlobal=writable(true)")
	}
	if cfg.Settings["react"] == nil {
		t.Fatalf("want a react settings entry")
	}
}

func TestFromJSONDecodesOverrides(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{
		"overrides": [{"files": ["*.test.js"], "rules": {"no-debugger": "off"}}]
	}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if len(cfg.Overrides) != 1 {
		t.Fatalf("want 1 override, got %d", len(cfg.Overrides))
	}
	if cfg.Overrides[0].Files[0] != "*.test.js" {
		t.Fatalf("want files=[*.test.js], got %+v", cfg.Overrides[0].Files)
	}
}

func TestRuleSettingJSONRoundTrips(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"rules": {"no-debugger": "error"}}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	data, err := cfg.Rules["no-debugger"].MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"error"` {
		t.Fatalf("want a compact string form, got %s", data)
	}
}

func TestFromYAMLDecodesBareAndArrayFormRules(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
rules:
  no-debugger: error
  max-len: [warn, {code: 100}]
plugins: [my-plugin]
`))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if cfg.Rules["no-debugger"].Severity != config.SeverityError {
		t.Fatalf("want no-debugger=error, got %v", cfg.Rules["no-debugger"].Severity)
	}
	rs := cfg.Rules["max-len"]
	if rs.Severity != config.SeverityWarn || len(rs.Options) != 1 {
		t.Fatalf("want warn + 1 option, got %+v", rs)
	}
	if len(cfg.Plugins) != 1 || cfg.Plugins[0] != "my-plugin" {
		t.Fatalf("want 1 plugin, got %+v", cfg.Plugins)
	}
}

func TestFromYAMLRejectsUnknownSeverity(t *testing.T) {
	if _, err := config.FromYAML([]byte("rules:\n  r: bogus\n")); err == nil {
		t.Fatalf("want an error for an unknown severity")
	}
}
