package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := NewCache()

	c.Set("key", "value")

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := NewCache()

	c.SetWithExpiration("short", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("short")
	assert.False(t, found)
}

func TestDeleteAndFlush(t *testing.T) {
	c := NewCache()

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Count())

	c.Delete("a")
	assert.Equal(t, 1, c.Count())

	c.Flush()
	assert.Equal(t, 0, c.Count())
}

func TestNoExpirationMeansForever(t *testing.T) {
	c := NewCache()

	c.SetWithExpiration("pinned", "value", 0)
	time.Sleep(5 * time.Millisecond)

	_, found := c.Get("pinned")
	assert.True(t, found)
}
