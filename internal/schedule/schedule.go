// Package schedule is the optional, spec-sanctioned (§5 "inter-file
// parallelism") convenience driver that runs a batch of files' full
// parse+semantic+lint pipelines concurrently, one internal/arena per file
// (§5 "each file owns exactly one arena and all work on it is
// single-threaded" — the constraint this package exists to satisfy at the
// batch level without serializing the whole run). Concurrency is grounded
// on codenerd's intelligence_gatherer, the pack's own errgroup.WithContext
// fan-out-with-shared-error-cancellation idiom, generalized from gathering
// independent report sections to linting independent files: here every
// goroutine owns a disjoint slot in a pre-sized result slice instead of a
// mutex-guarded shared struct, since files share no state to merge.
package schedule

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jscore-dev/jscore/internal/arena"
	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/cache"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/linter"
	"github.com/jscore-dev/jscore/internal/loader"
	"github.com/jscore-dev/jscore/internal/parser"
	"github.com/jscore-dev/jscore/internal/semantic"
)

// File is one unit of work: a path (carrying its extension, which decides
// whether the partial loader runs), its extension, and its raw bytes.
type File struct {
	Path   string
	Ext    string
	Source []byte
}

// Result is one file's outcome. Err is set when parsing failed; a parse
// failure does not abort the batch, it only empties that file's own
// Diagnostics.
type Result struct {
	Path          string
	Diagnostics   []linter.Diagnostic
	SemanticDiags []semantic.Diagnostic
	CacheHit      bool
	ArenaStats    arena.Stats
	Err           error
}

// Driver owns the pieces every worker shares: the rule registry every
// file is linted against, an optional diagnostics cache, and the hash of
// the currently active rule set (recomputed by the caller whenever
// configuration changes, per internal/cache's key contract).
type Driver struct {
	Registry    *linter.Registry
	Cache       *cache.Cache
	RuleSetHash string

	// Concurrency caps the number of files processed at once; zero means
	// unbounded (errgroup.Group's default), left to the caller to bound
	// via runtime.GOMAXPROCS or a CLI flag.
	Concurrency int
}

// Run lints every file in files concurrently and returns one Result per
// input, in the same order, regardless of completion order. A file-level
// parse/lint error is recorded on that file's Result rather than returned
// from Run; Run's own error is reserved for something affecting the whole
// batch (none of the per-file work can currently produce one, since each
// worker recovers its own error into its Result slot, but the errgroup
// plumbing is kept so a future whole-batch precondition — e.g. a plugin
// manager setup failure — has somewhere to surface).
func (d *Driver) Run(ctx context.Context, files []File) ([]Result, error) {
	results := make([]Result, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	if d.Concurrency > 0 {
		eg.SetLimit(d.Concurrency)
	}

	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			results[i] = d.runOne(egCtx, f)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (d *Driver) runOne(ctx context.Context, f File) (res Result) {
	res = Result{Path: f.Path}

	a := arena.New()
	defer func() { res.ArenaStats = a.Stats() }()

	src, typeScript, jsx := d.resolveSource(f)

	sourceHash := cache.HashBytes(f.Source)
	if d.Cache != nil && d.RuleSetHash != "" {
		if diags, ok, err := d.Cache.Get(ctx, d.RuleSetHash, sourceHash); err == nil && ok {
			res.Diagnostics = diags
			res.CacheHit = true
			return res
		}
	}

	sourceType := ast.SourceScript
	if jsx || typeScript {
		sourceType = ast.SourceModule
	}

	lx := lexer.New(src)
	prog, parseDiags := parser.ParseProgram(lx, lx, parser.Options{
		SourceType: sourceType,
		JSX:        jsx,
		TypeScript: typeScript,
	})
	if len(parseDiags) != 0 {
		res.Err = fmt.Errorf("parse %s: %v", f.Path, parseDiags)
		return res
	}

	tables, semDiags := semantic.Build(prog)
	res.SemanticDiags = semDiags

	if d.Registry != nil {
		res.Diagnostics = d.Registry.Lint(prog, tables, linter.Options{
			Path:   f.Path,
			Source: f.Source,
		})
	}

	if d.Cache != nil && d.RuleSetHash != "" {
		// A best-effort write: a cache write failure shouldn't fail a lint
		// run that otherwise completed fine, only cost the next run a hit.
		_ = d.Cache.Put(ctx, d.RuleSetHash, sourceHash, res.Diagnostics)
	}

	_ = a.AllocString(f.Path) // keeps the per-file arena exercised even when no AST node allocation routes through it yet
	return res
}

// resolveSource runs the partial loader for single-file-component
// extensions and falls back to the extension's own implied dialect
// otherwise (§6.5).
func (d *Driver) resolveSource(f File) (src string, typeScript, jsx bool) {
	ext := strings.ToLower(f.Ext)
	if loader.RequiresLoader(ext) {
		out := loader.Extract(string(f.Source), ext)
		return out.Source, out.TypeScript, out.JSX
	}
	switch ext {
	case "ts", "mts", "cts":
		return string(f.Source), true, false
	case "tsx":
		return string(f.Source), true, true
	case "jsx":
		return string(f.Source), false, true
	default:
		return string(f.Source), false, false
	}
}
