// Package cache is the content-hash-keyed diagnostics cache named in the
// scheduler's dependency table: a rule-set hash plus a source hash key a
// row holding that file's lint diagnostics as JSON, so internal/schedule
// can skip re-linting a file whose content and active rule set haven't
// changed since the last run. The storage layer is grounded on
// ottomap's stores/sqlite package (modernc.org/sqlite opened through
// database/sql under the driver name "sqlite", schema loaded from an
// embedded .sql file, a sentinel Error string type for the package's own
// failure modes).
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jscore-dev/jscore/internal/linter"
)

//go:embed schema.sql
var schemaDDL string

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrOpen      = Error("cache: open database")
	ErrSchema    = Error("cache: create schema")
	ErrMarshal   = Error("cache: marshal diagnostics")
	ErrUnmarshal = Error("cache: unmarshal diagnostics")
	ErrQuery     = Error("cache: query")
	ErrWrite     = Error("cache: write")
)

// Cache wraps a sqlite-backed diagnostics store. A Cache is safe for
// concurrent use by multiple goroutines (database/sql pools its own
// connections), the property internal/schedule's parallel file driver
// relies on.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, joinErr(ErrOpen, err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, joinErr(ErrSchema, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// HashBytes returns the hex-encoded sha256 digest of b, the hash function
// callers use to compute both a rule-set hash (over the resolved,
// serialized rule configuration) and a source hash (over a file's bytes)
// before calling Get/Put.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func cacheKey(ruleSetHash, sourceHash string) string {
	return ruleSetHash + ":" + sourceHash
}

// Get looks up the diagnostics cached for the given rule-set and source
// hash pair. The bool result is false on a cache miss; it is not an
// error for a file to have never been linted under this rule set.
func (c *Cache) Get(ctx context.Context, ruleSetHash, sourceHash string) ([]linter.Diagnostic, bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT diagnostics FROM diagnostics WHERE cache_key = ?`,
		cacheKey(ruleSetHash, sourceHash))

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, joinErr(ErrQuery, err)
	}

	var diags []linter.Diagnostic
	if err := json.Unmarshal([]byte(raw), &diags); err != nil {
		return nil, false, joinErr(ErrUnmarshal, err)
	}
	return diags, true, nil
}

// Put stores diags under the given rule-set and source hash pair,
// replacing any prior entry for that same pair.
func (c *Cache) Put(ctx context.Context, ruleSetHash, sourceHash string, diags []linter.Diagnostic) error {
	raw, err := json.Marshal(diags)
	if err != nil {
		return joinErr(ErrMarshal, err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO diagnostics (cache_key, rule_set_hash, source_hash, diagnostics, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		   diagnostics = excluded.diagnostics,
		   created_at = excluded.created_at`,
		cacheKey(ruleSetHash, sourceHash), ruleSetHash, sourceHash, string(raw), time.Now().Unix())
	if err != nil {
		return joinErr(ErrWrite, err)
	}
	return nil
}

// InvalidateRuleSet deletes every cached entry for a rule-set hash,
// used when a rule set changes shape in a way its hash doesn't already
// capture (e.g. an operator forcing a full re-lint via a CLI flag).
func (c *Cache) InvalidateRuleSet(ctx context.Context, ruleSetHash string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM diagnostics WHERE rule_set_hash = ?`, ruleSetHash)
	if err != nil {
		return joinErr(ErrWrite, err)
	}
	return nil
}

func joinErr(sentinel Error, cause error) error {
	return &wrappedError{sentinel: sentinel, cause: cause}
}

type wrappedError struct {
	sentinel Error
	cause    error
}

func (e *wrappedError) Error() string {
	return string(e.sentinel) + ": " + e.cause.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

func (e *wrappedError) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t == e.sentinel
}
