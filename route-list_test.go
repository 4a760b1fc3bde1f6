package vgnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteList(t *testing.T) {

	assert := assert.New(t)

	home, notFound := &testView{"home"}, &testView{"404"}

	var rl RouteList
	rl.MustAddRoute("/", home)
	rl.MustAddRoute("/properties", &testView{"properties"})
	rl.MustAddRoute("/feasibility", &testView{"feasibility"})
	rl.MustAddRoute("/gantt", &testView{"gantt"})

	assert.Equal(4, rl.Len())
	paths := []string{}
	for _, rt := range rl.Routes() {
		paths = append(paths, rt.Path)
	}
	assert.Equal([]string{"/", "/properties", "/feasibility", "/gantt"}, paths)

	rt, ok := rl.Match("/gantt")
	assert.True(ok)
	assert.Equal("/gantt", rt.Path)

	_, ok = rl.Match("/gantt/")
	assert.False(ok)

	assert.Equal(home, rl.Resolve("/blah"))

	rl.SetNotFound(notFound)
	assert.Equal(notFound, rl.Resolve("/blah"))
	assert.NotEqual(notFound, rl.Resolve("/"))
}

func TestRouteListErrors(t *testing.T) {

	var rl RouteList
	require.NoError(t, rl.AddRoute("/", nil))
	assert.ErrorIs(t, rl.AddRoute("/", nil), ErrDuplicateRoute)
	assert.ErrorIs(t, rl.AddRoute("", nil), ErrEmptyRoute)
	assert.Panics(t, func() { rl.MustAddRoute("/", nil) })

	_, err := NewRouteList(Route{Path: "/a"}, Route{Path: "/a"})
	assert.ErrorIs(t, err, ErrDuplicateRoute)
}

func TestRouteListNil(t *testing.T) {
	var rl *RouteList
	assert.Nil(t, rl.Resolve("/"))
}

type injectableView struct {
	NavigatorRef
}

func TestInjectNavigator(t *testing.T) {

	v1, v2 := &injectableView{}, &injectableView{}
	rl := &RouteList{}
	rl.MustAddRoute("/", v1)
	rl.MustAddRoute("/plain", &testView{"plain"})
	rl.SetNotFound(v2)

	r := New(rl, nil, nil)
	assert.Equal(t, 2, InjectNavigator(r, rl))

	v1.Navigate("/plain")
	assert.Equal(t, "/plain", r.Path())
	assert.Same(t, r, v2.Navigator)
}
