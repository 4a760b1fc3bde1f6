package vgnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistory(t *testing.T) {

	assert := assert.New(t)
	require := require.New(t)

	var h MemoryHistory
	loc, err := h.Location()
	require.NoError(err)
	assert.Equal("/", loc)

	var events []string
	remove, err := h.Listen(func(p string) { events = append(events, p) })
	require.NoError(err)

	h.Push("/a")
	h.Push("/b")
	h.Push("/c")
	assert.Equal(4, h.Len())
	assert.Empty(events, "push must not notify")

	assert.True(h.Back())
	assert.True(h.Back())
	assert.Equal([]string{"/b", "/a"}, events)

	// pushing from the middle drops the forward entries
	h.Push("/d")
	assert.Equal(3, h.Len())
	assert.False(h.Forward())

	h.Replace("/e")
	loc, _ = h.Location()
	assert.Equal("/e", loc)
	assert.Equal(3, h.Len())

	assert.False(h.Go(-5))
	assert.False(h.Go(0))
	assert.True(h.Go(-2))
	assert.Equal([]string{"/b", "/a", "/"}, events)

	remove()
	assert.True(h.Forward())
	assert.Len(events, 3)
}

func TestLocationPath(t *testing.T) {
	for in, want := range map[string]string{
		"/settings":              "/settings",
		"/settings?tab=2":        "/settings",
		"/settings#faq":          "/settings",
		"/settings?tab=2#faq":    "/settings",
		"?tab=2":                 "/",
		"#faq":                   "/",
		"":                       "/",
		"/a%20b/c":               "/a%20b/c",
		"/projects/7/phases?x=1": "/projects/7/phases",
	} {
		assert.Equal(t, want, LocationPath(in), in)
	}
}
