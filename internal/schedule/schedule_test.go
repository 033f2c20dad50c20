package schedule_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jscore-dev/jscore/internal/cache"
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/rules"
	"github.com/jscore-dev/jscore/internal/schedule"
)

func newRegistry() *linter.Registry {
	reg := linter.NewRegistry()
	reg.Register(rules.NoDebugger{})
	return reg
}

func TestRunLintsEachFileAndPreservesOrder(t *testing.T) {
	d := &schedule.Driver{Registry: newRegistry()}

	files := []schedule.File{
		{Path: "a.js", Ext: "js", Source: []byte("debugger;")},
		{Path: "b.js", Ext: "js", Source: []byte("var x = 1;")},
		{Path: "c.js", Ext: "js", Source: []byte("debugger;")},
	}

	results, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d", len(results))
	}
	for i, want := range files {
		if results[i].Path != want.Path {
			t.Fatalf("result[%d].Path = %q, want %q (order not preserved)", i, results[i].Path, want.Path)
		}
	}
	if len(results[0].Diagnostics) != 1 || results[0].Diagnostics[0].RuleID != "no-debugger" {
		t.Fatalf("a.js: want 1 no-debugger diagnostic, got %+v", results[0].Diagnostics)
	}
	if len(results[1].Diagnostics) != 0 {
		t.Fatalf("b.js: want 0 diagnostics, got %+v", results[1].Diagnostics)
	}
	if len(results[2].Diagnostics) != 1 {
		t.Fatalf("c.js: want 1 no-debugger diagnostic, got %+v", results[2].Diagnostics)
	}
}

func TestRunReportsParseErrorWithoutAbortingBatch(t *testing.T) {
	d := &schedule.Driver{Registry: newRegistry()}

	files := []schedule.File{
		{Path: "bad.js", Ext: "js", Source: []byte("var = ;")},
		{Path: "good.js", Ext: "js", Source: []byte("var x = 1;")},
	}

	results, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Err == nil {
		t.Fatalf("bad.js: want a parse error recorded")
	}
	if results[1].Err != nil {
		t.Fatalf("good.js: want no error, got %v", results[1].Err)
	}
}

func TestRunExtractsVueScriptBeforeLinting(t *testing.T) {
	d := &schedule.Driver{Registry: newRegistry()}

	src := "<template><h1>hi</h1></template>\n<script lang=\"ts\">debugger;</script>\n"
	files := []schedule.File{{Path: "App.vue", Ext: "vue", Source: []byte(src)}}

	results, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results[0].Diagnostics) != 1 {
		t.Fatalf("want the debugger statement inside <script> to be linted, got %+v", results[0].Diagnostics)
	}
}

func TestRunUsesCacheOnSecondPass(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "diagnostics.db")
	c, err := cache.Open(dbPath)
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	defer c.Close()

	d := &schedule.Driver{Registry: newRegistry(), Cache: c, RuleSetHash: "rules-v1"}
	files := []schedule.File{{Path: "a.js", Ext: "js", Source: []byte("debugger;")}}

	first, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run (first): %v", err)
	}
	if first[0].CacheHit {
		t.Fatalf("want a cache miss on the first run")
	}
	if len(first[0].Diagnostics) != 1 {
		t.Fatalf("want 1 diagnostic on first run, got %+v", first[0].Diagnostics)
	}

	second, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run (second): %v", err)
	}
	if !second[0].CacheHit {
		t.Fatalf("want a cache hit on the second run for unchanged content and rule set")
	}
	if len(second[0].Diagnostics) != 1 || second[0].Diagnostics[0].RuleID != "no-debugger" {
		t.Fatalf("want the cached diagnostic replayed, got %+v", second[0].Diagnostics)
	}
}

func TestRunRecordsArenaStatsPerFile(t *testing.T) {
	d := &schedule.Driver{Registry: newRegistry()}
	files := []schedule.File{{Path: "a.js", Ext: "js", Source: []byte("var x = 1;")}}

	results, err := d.Run(context.Background(), files)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].ArenaStats.Allocations == 0 {
		t.Fatalf("want at least one arena allocation recorded, got %+v", results[0].ArenaStats)
	}
}
