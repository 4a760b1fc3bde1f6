package vgnav

import "context"

type routerKey struct{}

// WithRouter returns a copy of ctx carrying r.
func WithRouter(ctx context.Context, r *Router) context.Context {
	return context.WithValue(ctx, routerKey{}, r)
}

// RouterFrom returns the Router carried by ctx, if any.
func RouterFrom(ctx context.Context) (*Router, bool) {
	if ctx == nil {
		return nil, false
	}
	r, ok := ctx.Value(routerKey{}).(*Router)
	return r, ok && r != nil
}

// CurrentPath returns the current path of the Router carried by ctx.
// Pages rendered outside of a router get the path read directly from the
// document location, or "/" when there is no browser.
func CurrentPath(ctx context.Context) string {
	if r, ok := RouterFrom(ctx); ok {
		return r.Path()
	}
	return DocumentPath()
}

// NavigatorFrom returns the Navigator carried by ctx.
func NavigatorFrom(ctx context.Context) (Navigator, bool) {
	r, ok := RouterFrom(ctx)
	if !ok {
		return nil, false
	}
	return r, true
}
