package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	lastMethod string
	lastPath   string
	lastBody   any
	result     any
	err        error
}

func (f *fakeDispatcher) Handle(method, path string, body any) (any, error) {
	f.lastMethod = method
	f.lastPath = path
	f.lastBody = body
	return f.result, f.err
}

func TestDoWrapsResultInEnvelope(t *testing.T) {
	SetTokenGetter(nil)
	dispatcher := &fakeDispatcher{result: map[string]any{"ok": true}}
	c := New(dispatcher)

	resp, err := c.Post(context.Background(), "/contacts", map[string]any{"query": "vip"})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "OK", resp.StatusText)
	assert.Equal(t, map[string]any{"ok": true}, resp.Data)
	assert.Equal(t, "/contacts", resp.Config.URL)
	assert.Equal(t, "post", resp.Config.Method)
	assert.Equal(t, "post", dispatcher.lastMethod)
	assert.Equal(t, "/contacts", dispatcher.lastPath)
}

func TestDoAttachesBearerToken(t *testing.T) {
	SetTokenGetter(func() (string, error) { return "tok-123", nil })
	t.Cleanup(func() { SetTokenGetter(nil) })

	c := New(&fakeDispatcher{result: map[string]any{}})
	resp, err := c.Get(context.Background(), "/auth/me")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", resp.Config.Headers["Authorization"])
}

func TestDoProceedsWithoutTokenWhenGetterFails(t *testing.T) {
	SetTokenGetter(func() (string, error) { return "", errors.New("provider down") })
	t.Cleanup(func() { SetTokenGetter(nil) })

	c := New(&fakeDispatcher{result: map[string]any{}})
	resp, err := c.Get(context.Background(), "/org")
	require.NoError(t, err)
	_, has := resp.Config.Headers["Authorization"]
	assert.False(t, has)
}

func TestDoProceedsWithoutTokenWhenNoGetter(t *testing.T) {
	SetTokenGetter(nil)

	c := New(&fakeDispatcher{result: map[string]any{}})
	resp, err := c.Get(context.Background(), "/org")
	require.NoError(t, err)
	assert.Empty(t, resp.Config.Headers)
}

func TestDoPropagatesDispatchError(t *testing.T) {
	SetTokenGetter(nil)
	want := errors.New("Conversation not found")
	c := New(&fakeDispatcher{err: want})

	_, err := c.Post(context.Background(), "/messaging/send", nil)
	assert.ErrorIs(t, err, want)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	SetTokenGetter(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(&fakeDispatcher{result: map[string]any{}})
	_, err := c.Get(ctx, "/org")
	assert.ErrorIs(t, err, context.Canceled)
}
