package plugin

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jscore-dev/jscore/internal/arena"
	"github.com/jscore-dev/jscore/internal/jlog"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/singleflight"
	"go.uber.org/zap"
)

// Manager loads plugins against a Bridge, gates them on BridgeProtocolVersion,
// and routes lint_file calls. It is safe for concurrent use: concurrent
// Load calls for the same url are deduplicated by singleflight (§5
// "inter-file parallelism" can load the same plugin from several workers
// at once), matching how internal/schedule dedupes across parallel files.
type Manager struct {
	bridge Bridge
	group  singleflight.Group

	mu     sync.RWMutex
	loaded map[string]*PluginMeta // url -> resolved metadata
}

func NewManager(b Bridge) *Manager {
	return &Manager{bridge: b, loaded: make(map[string]*PluginMeta)}
}

// Load resolves the plugin at url, caching the result for the Manager's
// lifetime. A plugin requiring a newer bridge protocol than this core
// speaks is refused rather than loaded partially (§4.7, §6.3).
func (m *Manager) Load(url, name string, nameIsAlias bool) (*PluginMeta, error) {
	v, err, _ := m.group.Do(url, func() (any, error) {
		if meta, ok := m.cached(url); ok {
			return meta, nil
		}
		start := time.Now()
		result, err := m.bridge.LoadPlugin(url, name, nameIsAlias)
		jlog.L().Debug("plugin load", zap.String("url", url), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		if err != nil {
			return nil, fmt.Errorf("load plugin %q: %w", url, err)
		}
		if result.Error != "" {
			return nil, fmt.Errorf("load plugin %q: %s", url, result.Error)
		}
		meta := result.OK
		if meta.MinBridgeVersion != "" && semver.IsValid(meta.MinBridgeVersion) {
			if semver.Compare(BridgeProtocolVersion, meta.MinBridgeVersion) < 0 {
				return nil, fmt.Errorf("plugin %q requires bridge protocol >= %s, core provides %s",
					url, meta.MinBridgeVersion, BridgeProtocolVersion)
			}
		}
		m.mu.Lock()
		m.loaded[url] = meta
		m.mu.Unlock()
		return meta, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PluginMeta), nil
}

func (m *Manager) cached(url string) (*PluginMeta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta, ok := m.loaded[url]
	return meta, ok
}

// SetupRuleConfigs hands every plugin's resolved rule options to it once,
// before the first lint_file call of a run (§4.7).
func (m *Manager) SetupRuleConfigs(options map[string]any) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("marshal rule configs: %w", err)
	}
	return m.bridge.SetupRuleConfigs(payload)
}

func (m *Manager) CreateWorkspace(dir string) error { return m.bridge.CreateWorkspace(dir) }
func (m *Manager) DestroyWorkspace(dir string)       { m.bridge.DestroyWorkspace(dir) }

// LintFile runs req.RuleIDs against the AST in the arena chunk identified
// by req.BufferID. BufferEnvelope populates req.BufferID/req.Buffer from a
// *arena.FixedChunk before this is called.
func (m *Manager) LintFile(req LintFileRequest) ([]WireDiagnostic, error) {
	start := time.Now()
	result, err := m.bridge.LintFile(req)
	jlog.L().Debug("plugin lint_file", zap.String("path", req.Path), zap.Int("rule_count", len(req.RuleIDs)),
		zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	if err != nil {
		return nil, fmt.Errorf("lint_file %q: %w", req.Path, err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("lint_file %q: %s", req.Path, result.Error)
	}
	return result.OK, nil
}

// BufferEnvelope resolves chunk's zero-copy identity for one lint_file
// call: the stable buffer id, plus the raw bytes only on the chunk's first
// send to this process's plugin bridge (§4.7 zero-copy protocol). Callers
// share one chunk (and so one "sent" flag) across every plugin invoked for
// the same file, matching the spec's "flag is then set atomically" — the
// second plugin asked about the same chunk within the same run sees
// firstSend=false and omits the buffer.
func BufferEnvelope(chunk *arena.FixedChunk) (bufferID string, buf []byte) {
	id := chunk.BufferID().String()
	if chunk.MarkSent() {
		return id, chunk.Bytes()
	}
	return id, nil
}
