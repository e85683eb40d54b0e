package cache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned responses and counts calls per path.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	offline bool
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{calls: make(map[string]int)}
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[path]++
	if f.offline {
		return nil, errors.New("dial tcp: connection refused")
	}
	return &Entry{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/plain"}},
		Body:   []byte("content of " + path),
	}, nil
}

func (f *fakeFetcher) callCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func newTestManager(t *testing.T, fetcher Fetcher) *Manager {
	t.Helper()
	return NewManager(fetcher, Options{
		Version:     "v3",
		AppShell:    []string{"/", "/offline.html", "/assets/css/main.css"},
		OfflinePath: "/offline.html",
	})
}

func TestInstallPrecachesAppShell(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	require.NoError(t, m.Install(context.Background()))
	assert.Equal(t, StateInstalled, m.State())

	static := m.Store().Open("static-v3")
	assert.Equal(t, 3, static.Len())
	entry, ok := static.Get("/offline.html")
	assert.True(t, ok)
	assert.Equal(t, "content of /offline.html", string(entry.Body))
}

func TestInstallFailsWhenAssetUnavailable(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.offline = true
	m := newTestManager(t, fetcher)

	err := m.Install(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateInstalling, m.State())
}

func TestActivatePurgesStalePartitions(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	// Leftovers from a previous version
	m.Store().Open("static-v2").Put("/old", entry("stale"))
	m.Store().Open("images-v2").Put("/old.png", entry("stale"))
	m.Store().Open("dynamic-v3").Put("/current", entry("fresh"))

	m.Activate(context.Background())
	assert.Equal(t, StateActivated, m.State())

	names := m.Store().Names()
	assert.NotContains(t, names, "static-v2")
	assert.NotContains(t, names, "images-v2")
	assert.Equal(t, 1, m.Store().Open("dynamic-v3").Len())
}

func TestCacheFirstServesFromCacheAfterFill(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	d := RequestDescriptor{Path: "/assets/css/main.css"}
	first, err := m.HandleFetch(context.Background(), d)
	require.NoError(t, err)
	second, err := m.HandleFetch(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, 1, fetcher.callCount("/assets/css/main.css"))
}

func TestImagePartitionBound(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	for i := 0; i < 60; i++ {
		d := RequestDescriptor{Path: fmt.Sprintf("/assets/img/photo-%02d.jpg", i)}
		_, err := m.HandleFetch(context.Background(), d)
		require.NoError(t, err)
	}

	images := m.Store().Open("images-v3")
	assert.Equal(t, 50, images.Len())

	// The 10 earliest-inserted are gone, the rest survive
	for i := 0; i < 10; i++ {
		_, ok := images.Get(fmt.Sprintf("/assets/img/photo-%02d.jpg", i))
		assert.False(t, ok, "photo-%02d should be evicted", i)
	}
	for i := 10; i < 60; i++ {
		_, ok := images.Get(fmt.Sprintf("/assets/img/photo-%02d.jpg", i))
		assert.True(t, ok, "photo-%02d should survive", i)
	}
}

func TestDynamicPartitionBound(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	for i := 0; i < 40; i++ {
		d := RequestDescriptor{Navigation: true, Path: fmt.Sprintf("/practice-area-%02d", i)}
		_, err := m.HandleFetch(context.Background(), d)
		require.NoError(t, err)
	}

	assert.Equal(t, 30, m.Store().Open("dynamic-v3").Len())
}

func TestNetworkFirstPrefersFreshResponse(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	d := RequestDescriptor{Navigation: true, Path: "/about"}
	_, err := m.HandleFetch(context.Background(), d)
	require.NoError(t, err)
	_, err = m.HandleFetch(context.Background(), d)
	require.NoError(t, err)

	// Every request goes to the network under network-first
	assert.Equal(t, 2, fetcher.callCount("/about"))
}

func TestNetworkFirstFallsBackToCache(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)

	d := RequestDescriptor{Navigation: true, Path: "/about"}
	_, err := m.HandleFetch(context.Background(), d)
	require.NoError(t, err)

	fetcher.offline = true
	cached, err := m.HandleFetch(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "content of /about", string(cached.Body))
}

func TestNetworkFirstOfflineFallbackForNavigations(t *testing.T) {
	fetcher := newFakeFetcher()
	m := newTestManager(t, fetcher)
	require.NoError(t, m.Install(context.Background()))

	fetcher.offline = true

	t.Run("navigation with no cached match gets the offline page", func(t *testing.T) {
		d := RequestDescriptor{Navigation: true, Path: "/never-seen-before"}
		got, err := m.HandleFetch(context.Background(), d)
		require.NoError(t, err)
		assert.Equal(t, "content of /offline.html", string(got.Body))
	})

	t.Run("non-navigation propagates the failure", func(t *testing.T) {
		d := RequestDescriptor{Path: "/v1/unknown", Accept: "application/json"}
		_, err := m.HandleFetch(context.Background(), d)
		assert.Error(t, err)
	})
}

func TestControlMessages(t *testing.T) {
	t.Run("SKIP_WAITING activates an installed manager", func(t *testing.T) {
		fetcher := newFakeFetcher()
		m := newTestManager(t, fetcher)
		require.NoError(t, m.Install(context.Background()))

		m.HandleControlMessage(context.Background(), ControlSkipWaiting)
		assert.Equal(t, StateActivated, m.State())
	})

	t.Run("CLEAR_CACHE drops every partition regardless of version", func(t *testing.T) {
		fetcher := newFakeFetcher()
		m := newTestManager(t, fetcher)
		require.NoError(t, m.Install(context.Background()))
		m.Store().Open("static-v1").Put("/old", entry("stale"))

		m.HandleControlMessage(context.Background(), ControlClearCache)
		assert.Empty(t, m.Store().Names())
	})

	t.Run("unknown message types are ignored", func(t *testing.T) {
		fetcher := newFakeFetcher()
		m := newTestManager(t, fetcher)
		require.NoError(t, m.Install(context.Background()))

		m.HandleControlMessage(context.Background(), "REFRESH_EVERYTHING")
		assert.Equal(t, StateInstalled, m.State())
	})
}
