package cache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jscore-dev/jscore/internal/cache"
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/span"
)

func openTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagnostics.db")
	c, err := cache.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGetMissReturnsFalse(t *testing.T) {
	c := openTestCache(t)
	diags, ok, err := c.Get(context.Background(), "rules-1", "source-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("want miss, got hit with %v", diags)
	}
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	want := []linter.Diagnostic{
		{
			RuleID:   "no-debugger",
			Severity: linter.SeverityWarning,
			Message:  "unexpected debugger statement",
			Primary:  linter.Label{Span: span.Span{Start: 10, End: 19}, Message: "here"},
			Help:     "remove this before committing",
		},
	}

	if err := c.Put(ctx, "rules-1", "source-1", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(ctx, "rules-1", "source-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("want hit after Put")
	}
	if len(got) != 1 {
		t.Fatalf("want 1 diagnostic, got %d", len(got))
	}
	if got[0].RuleID != "no-debugger" || got[0].Severity != linter.SeverityWarning {
		t.Fatalf("got %+v, want RuleID=no-debugger Severity=Warning", got[0])
	}
	if got[0].Primary.Span.Start != 10 || got[0].Primary.Span.End != 19 {
		t.Fatalf("got span %+v, want {10 19}", got[0].Primary.Span)
	}
}

func TestPutOverwritesPriorEntryForSameKey(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	first := []linter.Diagnostic{{RuleID: "a", Message: "first"}}
	second := []linter.Diagnostic{{RuleID: "b", Message: "second"}}

	if err := c.Put(ctx, "rules-1", "source-1", first); err != nil {
		t.Fatalf("Put first: %v", err)
	}
	if err := c.Put(ctx, "rules-1", "source-1", second); err != nil {
		t.Fatalf("Put second: %v", err)
	}

	got, ok, err := c.Get(ctx, "rules-1", "source-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("want hit")
	}
	if len(got) != 1 || got[0].RuleID != "b" {
		t.Fatalf("got %+v, want overwritten entry with RuleID=b", got)
	}
}

func TestDifferentSourceHashIsDifferentEntry(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "rules-1", "source-1", []linter.Diagnostic{{RuleID: "a"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	_, ok, err := c.Get(ctx, "rules-1", "source-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("want miss for a different source hash under the same rule set")
	}
}

func TestDifferentRuleSetHashIsDifferentEntry(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "rules-1", "source-1", []linter.Diagnostic{{RuleID: "a"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	_, ok, err := c.Get(ctx, "rules-2", "source-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("want miss once the rule-set hash changes, even for the same source")
	}
}

func TestInvalidateRuleSetRemovesItsEntries(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "rules-1", "source-1", []linter.Diagnostic{{RuleID: "a"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(ctx, "rules-2", "source-1", []linter.Diagnostic{{RuleID: "b"}}); err != nil {
		t.Fatalf("Put other rule set: %v", err)
	}

	if err := c.InvalidateRuleSet(ctx, "rules-1"); err != nil {
		t.Fatalf("InvalidateRuleSet: %v", err)
	}

	if _, ok, _ := c.Get(ctx, "rules-1", "source-1"); ok {
		t.Fatalf("want rules-1 entry gone after invalidation")
	}
	if _, ok, _ := c.Get(ctx, "rules-2", "source-1"); !ok {
		t.Fatalf("want rules-2 entry untouched by invalidating rules-1")
	}
}

func TestHashBytesIsDeterministicAndSensitiveToContent(t *testing.T) {
	a := cache.HashBytes([]byte("const x = 1;"))
	b := cache.HashBytes([]byte("const x = 1;"))
	c := cache.HashBytes([]byte("const x = 2;"))

	if a != b {
		t.Fatalf("want same hash for identical input, got %q vs %q", a, b)
	}
	if a == c {
		t.Fatalf("want different hash for different input, got %q for both", a)
	}
	if len(a) != 64 {
		t.Fatalf("want 64 hex chars (sha256), got %d: %q", len(a), a)
	}
}
