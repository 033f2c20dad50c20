package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jscore-dev/jscore/internal/config"
	"github.com/jscore-dev/jscore/internal/loader"
)

// readSource reads path and resolves it to parseable JS/TS/JSX text,
// running the single-file-component loader first for extensions that
// need it (§6.5), the same dispatch internal/schedule.Driver.resolveSource
// uses for batched lint runs.
func readSource(path string) (src string, typeScript, jsx bool, raw []byte, err error) {
	raw, err = os.ReadFile(path)
	if err != nil {
		return "", false, false, nil, err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if loader.RequiresLoader(ext) {
		out := loader.Extract(string(raw), ext)
		return out.Source, out.TypeScript, out.JSX, raw, nil
	}
	switch ext {
	case "ts", "mts", "cts":
		return string(raw), true, false, raw, nil
	case "tsx":
		return string(raw), true, true, raw, nil
	case "jsx":
		return string(raw), false, true, raw, nil
	default:
		return string(raw), false, false, raw, nil
	}
}

// loadConfig decodes argsRoot.configPath as JSON or YAML by its extension,
// returning an empty Config when no path was given. It never searches a
// directory tree or resolves "extends" (§2.3, §2.4 both exclude that).
func loadConfig() (*config.Config, error) {
	if argsRoot.configPath == "" {
		return config.NewConfig(), nil
	}
	data, err := os.ReadFile(argsRoot.configPath)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(argsRoot.configPath)) {
	case ".yaml", ".yml":
		return config.FromYAML(data)
	default:
		return config.FromJSON(data)
	}
}
