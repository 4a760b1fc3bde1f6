package vgnav

import (
	"errors"
	"strings"
	"sync"
)

// ErrNotBrowser is returned by browser operations outside of a wasm environment.
var ErrNotBrowser = errors.New("not in browser (js) environment")

// History is the session history the Router drives.  BrowserHistory talks to
// window.history, MemoryHistory keeps entries in process.
type History interface {
	// Push adds a new entry for path.  No state object and no title are used.
	Push(path string)
	// Replace overwrites the current entry with path.
	Replace(path string)
	// Location returns the path of the current entry.
	Location() (string, error)
	// Listen registers fn to be called with the new location whenever the
	// user moves through history (back/forward).  Push and Replace do not
	// trigger it.  The returned func removes the registration.
	Listen(fn func(path string)) (remove func(), err error)
}

// LocationPath returns the path component of a location such as
// "/settings?tab=2#faq", which is what routes are matched against.
// The path is left as it appears in the location, percent escapes included.
// An empty path becomes FallbackPath.
func LocationPath(loc string) string {
	p := loc
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return FallbackPath
	}
	return p
}

// MemoryHistory is a History kept in memory.  It behaves like the browser
// stack: Push drops any forward entries, and Back, Forward and Go notify
// listeners the way popstate does.  The zero value starts at "/".
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	idx       int
	listeners []observerEntry
	nextID    int
}

// NewMemoryHistory returns a MemoryHistory whose only entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) init() {
	if len(h.entries) == 0 {
		h.entries = []string{FallbackPath}
	}
}

// Push implements History.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()
	h.entries = append(h.entries[:h.idx+1], path)
	h.idx++
}

// Replace implements History.
func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()
	h.entries[h.idx] = path
}

// Location implements History.
func (h *MemoryHistory) Location() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()
	return h.entries[h.idx], nil
}

// Listen implements History.
func (h *MemoryHistory) Listen(fn func(path string)) (func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, observerEntry{id: id, o: PathObserverFunc(fn)})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, le := range h.listeners {
			if le.id == id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}, nil
}

// Len returns the number of entries, like window.history.length.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.init()
	return len(h.entries)
}

// Back moves one entry back.  It returns false if already at the start.
func (h *MemoryHistory) Back() bool { return h.Go(-1) }

// Forward moves one entry forward.  It returns false if already at the end.
func (h *MemoryHistory) Forward() bool { return h.Go(1) }

// Go moves delta entries through the history and notifies listeners.
// Moves that would leave the stack are ignored and return false.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	h.init()
	n := h.idx + delta
	if delta == 0 || n < 0 || n >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.idx = n
	loc := h.entries[n]
	listeners := make([]observerEntry, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, le := range listeners {
		le.o.PathChanged(loc)
	}
	return true
}
