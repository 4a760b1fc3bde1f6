// Package vgnav is a client-side router for Go applications running in the browser.
//
// A Router holds the current path of the page, resolves it against a RouteList
// by exact match (falling back to the "/" route) and keeps it in sync with the
// browser history.  Link intercepts plain clicks on anchors so they navigate
// through the Router instead of reloading the page.
package vgnav

import (
	"errors"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/vugu/vgnav/internal/logging"
)

// ErrAlreadyListening is returned by Listen when the router is already subscribed to history events.
var ErrAlreadyListening = errors.New("history listener already set")

// EventEnv is our view of a Vugu EventEnv
type EventEnv interface {
	Lock()         // acquire write lock
	UnlockOnly()   // release write lock
	UnlockRender() // release write lock and request re-render
}

// New returns a new Router for the given routes and history.
// A nil history means a MemoryHistory starting at "/".
// The eventEnv may be nil, otherwise it is locked around path changes
// coming from history events and a re-render is requested afterwards.
func New(routes *RouteList, history History, eventEnv EventEnv) *Router {
	if routes == nil {
		routes = &RouteList{}
	}
	if history == nil {
		history = NewMemoryHistory(FallbackPath)
	}
	r := &Router{
		routes:   routes,
		history:  history,
		eventEnv: eventEnv,
		logger:   logging.GetLogger(),
	}
	r.path.Store(FallbackPath)
	r.location.Store(FallbackPath)
	return r
}

// Router handles client-side URL routing.
type Router struct {
	routes   *RouteList
	history  History
	eventEnv EventEnv
	logger   *slog.Logger

	path     atomic.String
	location atomic.String
	navMu    sync.Mutex // history change, path update and queueing happen together

	queueMu  sync.Mutex
	pending  []string // paths waiting to be delivered to observers, in change order
	draining bool

	obsMu     sync.Mutex
	observers []observerEntry
	nextObsID int

	listenMu       sync.Mutex
	removeListener func()
}

// Routes returns the route list the router resolves against.
func (r *Router) Routes() *RouteList { return r.routes }

// Path returns the current path.
func (r *Router) Path() string { return r.path.Load() }

// Location returns the current location including any query and fragment.
// It equals Path after Navigate; after Pull or a history event Path only
// holds the path component of it.
func (r *Router) Location() string { return r.location.Load() }

// View returns the view for the current path.  Any query or fragment
// given to Navigate is ignored for the lookup.
func (r *Router) View() interface{} { return r.Resolve(LocationPath(r.Path())) }

// Resolve returns the view for path by exact match, see RouteList.Resolve.
func (r *Router) Resolve(path string) interface{} {
	view, exact := r.routes.resolve(path)
	if !exact {
		r.logger.Debug("no exact route match, using fallback", "path", path, "found", view != nil)
	}
	return view
}

// Navigate pushes a history entry for path and makes it the current path.
// The path is not validated, an unknown path simply resolves to the fallback view.
// Navigate does not lock the EventEnv since it is normally called from an event
// handler that already holds it.
func (r *Router) Navigate(path string, opts ...NavigatorOpt) {

	r.navMu.Lock()
	if navOpts(opts).has(NavReplace) {
		r.history.Replace(path)
	} else {
		r.history.Push(path)
	}
	r.path.Store(path)
	r.location.Store(path)
	if !navOpts(opts).has(NavSkipRender) {
		r.enqueue(path)
	}
	r.navMu.Unlock()

	r.logger.Debug("navigate", "path", path, "replace", navOpts(opts).has(NavReplace))

	r.drain()
}

// Pull reads the current location from the history and makes its path
// component the current path without adding a history entry.
// This is generally called once at application startup.
func (r *Router) Pull() error {
	loc, err := r.history.Location()
	if err != nil {
		return err
	}
	r.navMu.Lock()
	r.path.Store(LocationPath(loc))
	r.location.Store(loc)
	r.navMu.Unlock()
	return nil
}

// Listen subscribes to back/forward navigation on the history.
// Each event updates the current path without pushing a new entry.
func (r *Router) Listen() error {
	r.listenMu.Lock()
	defer r.listenMu.Unlock()

	if r.removeListener != nil {
		return ErrAlreadyListening
	}

	remove, err := r.history.Listen(r.handlePopState)
	if err != nil {
		return err
	}
	r.removeListener = remove
	return nil
}

// Mount is Pull followed by Listen.
func (r *Router) Mount() error {
	if err := r.Pull(); err != nil {
		return err
	}
	return r.Listen()
}

// Close removes the history listener, if any.  It is safe to call more than once.
func (r *Router) Close() error {
	r.listenMu.Lock()
	defer r.listenMu.Unlock()
	if r.removeListener != nil {
		r.removeListener()
		r.removeListener = nil
	}
	return nil
}

// Subscribe registers o to be called after every path change.
// The returned func cancels the subscription.
// Popstate changes are delivered with the EventEnv lock held.
func (r *Router) Subscribe(o PathObserver) (cancel func()) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	id := r.nextObsID
	r.nextObsID++
	r.observers = append(r.observers, observerEntry{id: id, o: o})
	return func() {
		r.obsMu.Lock()
		defer r.obsMu.Unlock()
		for i, oe := range r.observers {
			if oe.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

func (r *Router) handlePopState(loc string) {

	if r.eventEnv != nil {
		r.eventEnv.Lock()
		defer r.eventEnv.UnlockRender()
	}

	p := LocationPath(loc)

	r.navMu.Lock()
	r.path.Store(p)
	r.location.Store(loc)
	r.enqueue(p)
	r.navMu.Unlock()

	r.logger.Debug("popstate", "path", p, "location", loc)

	r.drain()
}

// enqueue must be called with navMu held so the queue follows the order of path changes.
func (r *Router) enqueue(path string) {
	r.queueMu.Lock()
	r.pending = append(r.pending, path)
	r.queueMu.Unlock()
}

// drain delivers queued paths to observers.  Only one goroutine drains at a
// time, so observers see changes one at a time and in order.  A Navigate made
// from inside an observer, or from another goroutine while a drain is running,
// is delivered by the running drain after the current observers return.
func (r *Router) drain() {

	r.queueMu.Lock()
	if r.draining {
		r.queueMu.Unlock()
		return
	}
	r.draining = true
	r.queueMu.Unlock()

	done := false
	defer func() {
		if !done { // an observer panicked
			r.queueMu.Lock()
			r.draining = false
			r.queueMu.Unlock()
		}
	}()

	for {
		r.queueMu.Lock()
		if len(r.pending) == 0 {
			r.draining = false
			done = true
			r.queueMu.Unlock()
			return
		}
		path := r.pending[0]
		r.pending = r.pending[1:]
		r.queueMu.Unlock()

		r.notify(path)
	}
}

func (r *Router) notify(path string) {
	r.obsMu.Lock()
	obs := make([]observerEntry, len(r.observers))
	copy(obs, r.observers)
	r.obsMu.Unlock()

	for _, oe := range obs {
		oe.o.PathChanged(path)
	}
}
