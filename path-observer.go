package vgnav

// PathObserver is notified after the current path of a Router changes.
type PathObserver interface {
	PathChanged(path string)
}

// PathObserverFunc implements PathObserver as a function.
type PathObserverFunc func(path string)

// PathChanged implements PathObserver.
func (f PathObserverFunc) PathChanged(path string) { f(path) }

type observerEntry struct {
	id int
	o  PathObserver
}
