package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/prompter/internal/solver"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get("crane:__Y__")
	assert.False(t, ok)

	ranked := []solver.Ranked{{Word: "slate", Score: 12}}
	c.Put("crane:__Y__", ranked)

	got, ok := c.Get("crane:__Y__")
	assert.True(t, ok)
	assert.Equal(t, ranked, got)
}

func TestMemoryCacheBound(t *testing.T) {
	c := NewMemoryCache()
	for i := 0; i < maxEntries+10; i++ {
		c.Put(fmt.Sprintf("key-%d", i), nil)
	}
	m := c.(*memory)
	assert.LessOrEqual(t, len(m.entries), maxEntries+1)
}
