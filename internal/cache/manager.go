package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go-lawfirm-backend/pkg/logger"
)

// Lifecycle states, mirroring a service-worker's progression.
type State string

const (
	StateInstalling State = "installing"
	StateInstalled  State = "installed"
	StateActivating State = "activating"
	StateActivated  State = "activated"
)

// Control message types accepted by HandleControlMessage.
const (
	ControlSkipWaiting = "SKIP_WAITING"
	ControlClearCache  = "CLEAR_CACHE"
)

// Partition size limits. The static partition is unbounded: it only ever
// holds the fixed app-shell list.
const (
	ImagePartitionLimit   = 50
	DynamicPartitionLimit = 30
)

// Fetcher retrieves a path from the upstream origin.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Entry, error)
}

// Options configure a Manager.
type Options struct {
	// Version stamps the partition names; bumping it orphans old partitions
	// so Activate purges them.
	Version string
	// AppShell is the fixed asset list precached on Install.
	AppShell []string
	// OfflinePath is the fallback page served to navigations when both the
	// network and the cache come up empty. It must be part of AppShell.
	OfflinePath string
}

// Manager applies one of three caching strategies to every intercepted
// request and keeps the image and dynamic partitions bounded. Fetches may
// race on a partition; entry-level operations are atomic and eviction is a
// best-effort follow-up, so a partition can transiently run slightly over
// its limit under load.
type Manager struct {
	store   *Store
	fetcher Fetcher
	opts    Options

	mu    sync.Mutex
	state State
}

func NewManager(fetcher Fetcher, opts Options) *Manager {
	if opts.Version == "" {
		opts.Version = "v1"
	}
	if opts.OfflinePath == "" {
		opts.OfflinePath = "/offline.html"
	}
	return &Manager{
		store:   NewStore(),
		fetcher: fetcher,
		opts:    opts,
		state:   StateInstalling,
	}
}

// Store exposes the underlying partition store (stats, tests).
func (m *Manager) Store() *Store {
	return m.store
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) staticName() string  { return "static-" + m.opts.Version }
func (m *Manager) dynamicName() string { return "dynamic-" + m.opts.Version }
func (m *Manager) imageName() string   { return "images-" + m.opts.Version }

// Install precaches the app-shell list into the static partition. Any asset
// failing to fetch fails the install, like cache.addAll would.
func (m *Manager) Install(ctx context.Context) error {
	m.setState(StateInstalling)
	static := m.store.Open(m.staticName())
	for _, path := range m.opts.AppShell {
		entry, err := m.fetcher.Fetch(ctx, path)
		if err != nil {
			return fmt.Errorf("cache install: precache %s: %w", path, err)
		}
		static.Put(path, entry)
	}
	m.setState(StateInstalled)
	return nil
}

// Activate purges every partition not belonging to the current version, then
// marks the manager activated.
func (m *Manager) Activate(ctx context.Context) {
	m.setState(StateActivating)
	current := map[string]bool{
		m.staticName():  true,
		m.dynamicName(): true,
		m.imageName():   true,
	}
	for _, name := range m.store.Names() {
		if !current[name] {
			logger.L().Info("cache activate: purging stale partition", "partition", name)
			m.store.Delete(name)
		}
	}
	m.setState(StateActivated)
}

// HandleControlMessage processes a fire-and-forget control message from the
// page. Unknown types are ignored.
func (m *Manager) HandleControlMessage(ctx context.Context, msgType string) {
	switch msgType {
	case ControlSkipWaiting:
		if m.State() == StateInstalled {
			m.Activate(ctx)
		}
	case ControlClearCache:
		for _, name := range m.store.Names() {
			m.store.Delete(name)
		}
		logger.L().Info("cache control: all partitions cleared")
	}
}

// HandleFetch serves one intercepted same-origin request under the strategy
// the classifier picks for it. Cross-origin filtering happens before this
// layer.
func (m *Manager) HandleFetch(ctx context.Context, d RequestDescriptor) (*Entry, error) {
	switch Classify(d) {
	case StrategyCacheFirst:
		return m.cacheFirst(ctx, d, m.store.Open(m.staticName()), 0)
	case StrategyCacheFirstImage:
		return m.cacheFirst(ctx, d, m.store.Open(m.imageName()), ImagePartitionLimit)
	default:
		return m.networkFirst(ctx, d)
	}
}

// cacheFirst returns a cached entry when present, otherwise fills the given
// partition from the network. Only 200 responses are stored.
func (m *Manager) cacheFirst(ctx context.Context, d RequestDescriptor, p *Partition, limit int) (*Entry, error) {
	if entry, ok := p.Get(d.Path); ok {
		return entry, nil
	}
	entry, err := m.fetcher.Fetch(ctx, d.Path)
	if err != nil {
		return nil, err
	}
	if entry.Status == http.StatusOK {
		p.Put(d.Path, entry)
		if evicted := p.Trim(limit); evicted > 0 {
			logger.L().Debug("cache eviction", "partition", p.Name(), "evicted", evicted)
		}
	}
	return entry, nil
}

// networkFirst always tries the origin, caching successes into the dynamic
// partition. On network failure it falls back to any cached match, then to
// the offline page for navigations.
func (m *Manager) networkFirst(ctx context.Context, d RequestDescriptor) (*Entry, error) {
	entry, err := m.fetcher.Fetch(ctx, d.Path)
	if err == nil {
		if entry.Status == http.StatusOK {
			dynamic := m.store.Open(m.dynamicName())
			dynamic.Put(d.Path, entry)
			if evicted := dynamic.Trim(DynamicPartitionLimit); evicted > 0 {
				logger.L().Debug("cache eviction", "partition", dynamic.Name(), "evicted", evicted)
			}
		}
		return entry, nil
	}

	for _, name := range []string{m.dynamicName(), m.staticName(), m.imageName()} {
		if cached, ok := m.store.Open(name).Get(d.Path); ok {
			return cached, nil
		}
	}

	if d.Navigation || strings.Contains(d.Accept, "text/html") {
		if offline, ok := m.store.Open(m.staticName()).Get(m.opts.OfflinePath); ok {
			return offline, nil
		}
	}

	return nil, err
}

// OriginFetcher fetches paths from a fixed upstream origin over HTTP.
type OriginFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewOriginFetcher(baseURL string) *OriginFetcher {
	return &OriginFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *OriginFetcher) Fetch(ctx context.Context, path string) (*Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("origin fetch: new request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("origin fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("origin fetch: read body: %w", err)
	}
	return &Entry{
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: time.Now(),
	}, nil
}
