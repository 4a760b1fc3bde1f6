package vgnav

import (
	"errors"
	"fmt"
)

// FallbackPath is the route pattern whose view is used when a path has no exact match.
const FallbackPath = "/"

// ErrDuplicateRoute is returned when the same pattern is added twice.
var ErrDuplicateRoute = errors.New("duplicate route")

// ErrEmptyRoute is returned when a route is added with an empty pattern.
var ErrEmptyRoute = errors.New("empty route path")

// Route binds a literal path to a view.  The view is opaque to the router,
// typically a component instance.
type Route struct {
	Path string
	View interface{}
}

// RouteList is an ordered list of routes.  Lookups are by exact string match,
// any ":param" segments in a pattern are not interpreted (see MatchParams).
// A RouteList is built once at startup and should not be changed after
// it is handed to a Router.
type RouteList struct {
	routes []Route
	index  map[string]int

	notFound    interface{}
	hasNotFound bool
}

// NewRouteList returns a RouteList with the given routes added in order.
func NewRouteList(routes ...Route) (*RouteList, error) {
	rl := &RouteList{}
	for _, rt := range routes {
		if err := rl.AddRoute(rt.Path, rt.View); err != nil {
			return nil, err
		}
	}
	return rl, nil
}

// MustAddRoute is like AddRoute but panics upon error.
func (rl *RouteList) MustAddRoute(path string, view interface{}) {
	err := rl.AddRoute(path, view)
	if err != nil {
		panic(err)
	}
}

// AddRoute appends a route to the list.
func (rl *RouteList) AddRoute(path string, view interface{}) error {
	if path == "" {
		return ErrEmptyRoute
	}
	if rl.index == nil {
		rl.index = make(map[string]int)
	}
	if _, ok := rl.index[path]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, path)
	}
	rl.index[path] = len(rl.routes)
	rl.routes = append(rl.routes, Route{Path: path, View: view})
	return nil
}

// SetNotFound assigns a view used for unmatched paths in preference to the
// FallbackPath view.  Unset by default.
func (rl *RouteList) SetNotFound(view interface{}) {
	rl.notFound = view
	rl.hasNotFound = true
}

// Routes returns a copy of the routes in the order they were added.
func (rl *RouteList) Routes() []Route {
	ret := make([]Route, len(rl.routes))
	copy(ret, rl.routes)
	return ret
}

// Len returns the number of routes.
func (rl *RouteList) Len() int { return len(rl.routes) }

// Match returns the route whose pattern is exactly path.
func (rl *RouteList) Match(path string) (Route, bool) {
	i, ok := rl.index[path]
	if !ok {
		return Route{}, false
	}
	return rl.routes[i], true
}

// Resolve returns the view for path.  Without an exact match the not found
// view is used if set, then the FallbackPath view.  If none of those exist
// the result is nil.
func (rl *RouteList) Resolve(path string) interface{} {
	view, _ := rl.resolve(path)
	return view
}

// resolve also reports whether path matched exactly.
func (rl *RouteList) resolve(path string) (view interface{}, exact bool) {
	if rl == nil {
		return nil, false
	}
	if rt, ok := rl.Match(path); ok {
		return rt.View, true
	}
	if rl.hasNotFound {
		return rl.notFound, false
	}
	if rt, ok := rl.Match(FallbackPath); ok {
		return rt.View, false
	}
	return nil, false
}
