package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New()

	_, ok := c.Get("/es")
	assert.False(t, ok)

	c.Set("/es", []byte("home"))
	payload, ok := c.Get("/es")
	assert.True(t, ok)
	assert.Equal(t, []byte("home"), payload)
}

func TestCacheInvalidateStripsLocale(t *testing.T) {
	c := New()
	c.Set("/es", []byte("a"))
	c.Set("/en", []byte("b"))
	c.Set("/es/projects", []byte("c"))
	c.Set("/en/projects/casa-lago", []byte("d"))
	c.Set("/es/about", []byte("e"))

	c.Invalidate("/projects")

	_, ok := c.Get("/es/projects")
	assert.False(t, ok)
	_, ok = c.Get("/en/projects/casa-lago")
	assert.False(t, ok, "nested paths invalidate with their parent")

	_, ok = c.Get("/es")
	assert.True(t, ok)
	_, ok = c.Get("/es/about")
	assert.True(t, ok)
}

func TestCacheInvalidateRoot(t *testing.T) {
	c := New()
	c.Set("/es", []byte("a"))
	c.Set("/ja", []byte("b"))
	c.Set("/es/projects", []byte("c"))

	c.Invalidate("/")

	_, ok := c.Get("/es")
	assert.False(t, ok, "the home page of every locale goes stale")
	_, ok = c.Get("/ja")
	assert.False(t, ok)
	_, ok = c.Get("/es/projects")
	assert.True(t, ok, "root invalidation does not cascade to subpages")
}

func TestCacheInvalidateUnprefixedPaths(t *testing.T) {
	c := New()
	c.Set("/admin/dashboard/featured-projects", []byte("a"))
	c.Set("/admin/dashboard/tags", []byte("b"))

	c.Invalidate("/admin/dashboard/featured-projects")

	_, ok := c.Get("/admin/dashboard/featured-projects")
	assert.False(t, ok)
	_, ok = c.Get("/admin/dashboard/tags")
	assert.True(t, ok)
}
