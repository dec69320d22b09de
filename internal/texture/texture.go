// Package texture manages surface texture residency for bodies in the
// most-detailed tier. Assets are reference-counted across bodies sharing a
// key and disposed only when no eligible body needs them. Loads are
// asynchronous and never block frame production: while a load is pending
// the body renders with its fallback color, and a load that completes after
// the body scrolled out of range is disposed immediately.
package texture

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/litescript/ls-exoview/internal/logging"
)

// Resource is an opaque loaded texture asset. Dispose releases the
// underlying GPU/host resource and must be called exactly once.
type Resource interface {
	Dispose()
}

// Loader fetches texture assets. Implementations must call done exactly
// once per Load, from any goroutine; the manager serializes its own state.
type Loader interface {
	// Has reports whether an identifier-specific asset exists for key.
	Has(key string) bool

	// Load fetches the asset for key asynchronously.
	Load(key string, done func(Resource, error))
}

// DefaultCategories are the shared category assets used when a body has no
// identifier-specific texture. A body is assigned one deterministically by
// hashing its name, so assignment is stable across runs.
var DefaultCategories = []string{
	"category/rocky-0",
	"category/rocky-1",
	"category/rocky-2",
	"category/gas-0",
	"category/gas-1",
	"category/ice-0",
}

type entry struct {
	res     Resource
	refs    int
	loading bool
	failed  bool
}

// Manager owns the shared texture cache. All mutation happens under one
// mutex: acquire/release arrive from the frame loop, load completions from
// loader goroutines.
type Manager struct {
	mu     sync.Mutex
	loader Loader
	log    *logging.Logger

	assets     map[string]*entry // asset key → cache entry
	held       map[string]string // body ID → asset key currently referenced
	assigned   map[string]string // body ID → memoized category key
	categories []string
}

// NewManager creates a manager around a loader. A nil logger discards.
func NewManager(loader Loader, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		loader:     loader,
		log:        log,
		assets:     make(map[string]*entry),
		held:       make(map[string]string),
		assigned:   make(map[string]string),
		categories: DefaultCategories,
	}
}

// KeyFor returns the asset key for a body: its canonicalized identifier
// when the loader carries a dedicated asset, otherwise a category key
// assigned once per body and memoized for the session.
func (m *Manager) KeyFor(bodyID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyForLocked(bodyID)
}

func (m *Manager) keyForLocked(bodyID string) string {
	canon := Canonicalize(bodyID)
	if m.loader != nil && m.loader.Has(canon) {
		return canon
	}
	if key, ok := m.assigned[bodyID]; ok {
		return key
	}
	key := m.categories[stableHash(bodyID)%uint32(len(m.categories))]
	m.assigned[bodyID] = key
	return key
}

// Acquire marks a body as needing its texture resident, starting a load if
// the asset is not cached. Idempotent per body: repeated acquires while
// already holding the same key do not inflate the refcount.
func (m *Manager) Acquire(bodyID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loader == nil {
		return
	}

	key := m.keyForLocked(bodyID)
	if prev, ok := m.held[bodyID]; ok {
		if prev == key {
			return
		}
		m.releaseLocked(bodyID, prev)
	}
	m.held[bodyID] = key

	e, ok := m.assets[key]
	if !ok {
		e = &entry{}
		m.assets[key] = e
	}
	e.refs++

	if e.res != nil || e.loading || e.failed {
		// Already resident, in flight, or permanently fallen back.
		return
	}

	e.loading = true
	m.loader.Load(key, func(res Resource, err error) {
		m.complete(key, res, err)
	})
}

// complete handles a finished load. Eligibility may have changed while the
// request was in flight: with no remaining references the fresh resource is
// disposed rather than bound.
func (m *Manager) complete(key string, res Resource, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.assets[key]
	if !ok {
		// Entry evicted while in flight; discard the stale result.
		if res != nil {
			res.Dispose()
		}
		return
	}
	e.loading = false

	if err != nil {
		// Permanent fallback to flat color: no retry storm.
		e.failed = true
		m.log.Warn("texture load failed for %s: %v", key, err)
		if e.refs == 0 {
			delete(m.assets, key)
		}
		return
	}

	if e.refs == 0 {
		// Stale async result: nobody qualifies anymore.
		if res != nil {
			res.Dispose()
		}
		delete(m.assets, key)
		return
	}

	e.res = res
}

// Release drops a body's claim on its texture. The asset is disposed only
// when the last claim goes away.
func (m *Manager) Release(bodyID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, ok := m.held[bodyID]
	if !ok {
		return
	}
	delete(m.held, bodyID)
	m.releaseLocked(bodyID, key)
}

func (m *Manager) releaseLocked(bodyID, key string) {
	e, ok := m.assets[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	if e.loading {
		// Let the in-flight completion observe refs==0 and dispose.
		return
	}
	if e.res != nil {
		e.res.Dispose()
	}
	if !e.failed {
		delete(m.assets, key)
	}
}

// Resident returns the bound resource for a body, or false while the load
// is pending, failed, or the body holds no claim. Callers render the
// fallback flat-color material on false.
func (m *Manager) Resident(bodyID string) (Resource, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, ok := m.held[bodyID]
	if !ok {
		return nil, false
	}
	e, ok := m.assets[key]
	if !ok || e.res == nil {
		return nil, false
	}
	return e.res, true
}

// RefCount returns the current reference count for an asset key.
func (m *Manager) RefCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.assets[key]; ok {
		return e.refs
	}
	return 0
}

// Canonicalize normalizes a body identifier into an asset key.
func Canonicalize(bodyID string) string {
	s := strings.ToLower(strings.TrimSpace(bodyID))
	return strings.ReplaceAll(s, " ", "-")
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
