package vgnav

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPath(t *testing.T) {

	assert := assert.New(t)

	// no router in scope and no browser
	assert.Equal("/", CurrentPath(context.Background()))
	_, ok := NavigatorFrom(context.Background())
	assert.False(ok)

	r := New(nil, nil, nil)
	ctx := WithRouter(context.Background(), r)
	r.Navigate("/regulatory/submissions")
	assert.Equal("/regulatory/submissions", CurrentPath(ctx))

	nav, ok := NavigatorFrom(ctx)
	assert.True(ok)
	nav.Navigate("/tenants")
	assert.Equal("/tenants", CurrentPath(ctx))

	got, ok := RouterFrom(ctx)
	assert.True(ok)
	assert.Same(r, got)

	_, ok = RouterFrom(WithRouter(context.Background(), nil))
	assert.False(ok)
}
