package vgnav

import (
	"strings"
	"sync"

	"github.com/vugu/vugu/js"
)

// BrowserHistory implements History on top of window.history.
// Outside of a wasm environment Push and Replace do nothing and
// Location and Listen return ErrNotBrowser.
type BrowserHistory struct {
	// UseFragment means the fragment part of the URL (after the "#") is used
	// as the path.  This can be useful for applications which are served
	// statically and cannot handle URL routing on the server side.
	// It should be set before the history is used.
	UseFragment bool
}

func (h *BrowserHistory) urlFor(path string) string {
	if h.UseFragment {
		return "#" + path
	}
	return path
}

// Push implements History using window.history.pushState().
func (h *BrowserHistory) Push(path string) {
	g := js.Global()
	if g.Truthy() {
		g.Get("window").Get("history").Call("pushState", nil, "", h.urlFor(path))
	}
}

// Replace implements History using window.history.replaceState().
func (h *BrowserHistory) Replace(path string) {
	g := js.Global()
	if g.Truthy() {
		g.Get("window").Get("history").Call("replaceState", nil, "", h.urlFor(path))
	}
}

// Location implements History by reading window.location.  The result
// includes any query and fragment, or is the fragment itself with UseFragment.
func (h *BrowserHistory) Location() (string, error) {
	return readLocation(h.UseFragment)
}

// Listen implements History with a "popstate" listener on window.
func (h *BrowserHistory) Listen(fn func(path string)) (func(), error) {

	g := js.Global()
	if !g.Truthy() {
		return nil, ErrNotBrowser
	}

	jf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		loc, err := h.Location()
		if err != nil {
			return nil
		}
		fn(loc)
		return nil
	})

	g.Get("window").Call("addEventListener", "popstate", jf)

	var once sync.Once
	return func() {
		once.Do(func() {
			js.Global().Get("window").Call("removeEventListener", "popstate", jf)
			jf.Release()
		})
	}, nil
}

// DocumentPath reads the path component straight from window.location.
// Outside of a browser it returns FallbackPath.
func DocumentPath() string {
	loc, err := readLocation(false)
	if err != nil {
		return FallbackPath
	}
	return LocationPath(loc)
}

func readLocation(useFragment bool) (string, error) {

	g := js.Global()
	if !g.Truthy() {
		return "", ErrNotBrowser
	}

	loc := g.Get("window").Get("location")

	if useFragment {
		p := strings.TrimPrefix(loc.Get("hash").String(), "#")
		if p == "" {
			p = FallbackPath
		}
		return p, nil
	}

	p := loc.Get("pathname").String() + loc.Get("search").String() + loc.Get("hash").String()
	if p == "" {
		p = FallbackPath
	}
	return p, nil
}
