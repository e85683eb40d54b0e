package cache

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(body string) *Entry {
	return &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte(body)}
}

func TestPartitionInsertionOrder(t *testing.T) {
	p := newPartition("test")
	for i := 0; i < 5; i++ {
		p.Put(fmt.Sprintf("/page-%d", i), entry("x"))
	}
	assert.Equal(t, []string{"/page-0", "/page-1", "/page-2", "/page-3", "/page-4"}, p.Keys())

	t.Run("overwrite keeps original position", func(t *testing.T) {
		p.Put("/page-0", entry("refreshed"))
		assert.Equal(t, 5, p.Len())
		assert.Equal(t, "/page-0", p.Keys()[0])
	})
}

func TestPartitionTrimEvictsOldestFirst(t *testing.T) {
	p := newPartition("test")
	for i := 0; i < 8; i++ {
		p.Put(fmt.Sprintf("/img-%d", i), entry("x"))
	}

	evicted := p.Trim(5)
	assert.Equal(t, 3, evicted)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, []string{"/img-3", "/img-4", "/img-5", "/img-6", "/img-7"}, p.Keys())

	_, ok := p.Get("/img-0")
	assert.False(t, ok)
	_, ok = p.Get("/img-7")
	assert.True(t, ok)
}

func TestPartitionTrimUnbounded(t *testing.T) {
	p := newPartition("static")
	for i := 0; i < 100; i++ {
		p.Put(fmt.Sprintf("/a-%d", i), entry("x"))
	}
	assert.Equal(t, 0, p.Trim(0))
	assert.Equal(t, 100, p.Len())
}

func TestPartitionGetReturnsCopy(t *testing.T) {
	p := newPartition("test")
	p.Put("/page", entry("original"))

	got, ok := p.Get("/page")
	assert.True(t, ok)
	got.Body[0] = 'X'

	again, _ := p.Get("/page")
	assert.Equal(t, "original", string(again.Body))
}

func TestStoreOpenAndDelete(t *testing.T) {
	s := NewStore()
	s.Open("static-v3").Put("/a", entry("x"))
	s.Open("dynamic-v3").Put("/b", entry("y"))

	assert.ElementsMatch(t, []string{"static-v3", "dynamic-v3"}, s.Names())

	s.Delete("dynamic-v3")
	assert.ElementsMatch(t, []string{"static-v3"}, s.Names())

	// Re-opening a deleted partition starts empty
	assert.Equal(t, 0, s.Open("dynamic-v3").Len())
}
