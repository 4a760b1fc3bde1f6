package vgnav

// NavigatorOpt is a marker interface to ensure that options to Navigator are passed intentionally.
type NavigatorOpt interface {
	IsNavigatorOpt()
}

type intNavigatorOpt int

// IsNavigatorOpt implements NavigatorOpt.
func (i intNavigatorOpt) IsNavigatorOpt() {}

var (
	// NavReplace will cause this navigation to replace the
	// current history entry rather than pushing to the stack.
	// Implemented using window.history.replaceState()
	NavReplace NavigatorOpt = intNavigatorOpt(1)

	// NavSkipRender will cause this navigation to not notify path observers.
	// It can be used when a component has already accounted for the render
	// in some other way and just wants to inform the Router of the current
	// logical path.
	NavSkipRender NavigatorOpt = intNavigatorOpt(2)
)

type navOpts []NavigatorOpt

func (no navOpts) has(o NavigatorOpt) bool {
	for _, o2 := range no {
		if o == o2 {
			return true
		}
	}
	return false
}

// Navigator is implemented by anything that can move the app to a new path.
// *Router is the usual implementation.
type Navigator interface {
	Navigate(path string, opts ...NavigatorOpt)
}

// NavigatorFunc implements Navigator as a function.
type NavigatorFunc func(path string, opts ...NavigatorOpt)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(path string, opts ...NavigatorOpt) { f(path, opts...) }

// NavigatorRef can be embedded in a component so the Navigator can be
// injected during component creation.
type NavigatorRef struct {
	Navigator // embed Navigator
}

// NavigatorSet implements NavigatorSetter.
func (h *NavigatorRef) NavigatorSet(o Navigator) {
	h.Navigator = o
}

// NavigatorSetter is implemented by components which accept a Navigator.
type NavigatorSetter interface {
	NavigatorSet(Navigator)
}

// InjectNavigator calls NavigatorSet on each view in the list that implements
// NavigatorSetter.  It returns the number of views injected.
func InjectNavigator(nav Navigator, rl *RouteList) int {
	n := 0
	for _, rt := range rl.routes {
		if s, ok := rt.View.(NavigatorSetter); ok {
			s.NavigatorSet(nav)
			n++
		}
	}
	if s, ok := rl.notFound.(NavigatorSetter); ok && rl.hasNotFound {
		s.NavigatorSet(nav)
		n++
	}
	return n
}
