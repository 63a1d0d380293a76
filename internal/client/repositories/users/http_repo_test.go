package users

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/mockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and replays a canned response.
type fakeClient struct {
	calls    int
	method   string
	path     string
	body     any
	respBody string
	err      error
}

func (f *fakeClient) reply(method, path string, body any) (*client.Response, error) {
	f.calls++
	f.method, f.path, f.body = method, path, body
	if f.err != nil {
		return nil, f.err
	}
	return &client.Response{StatusCode: 200, Body: []byte(f.respBody)}, nil
}

func (f *fakeClient) Get(_ context.Context, path string) (*client.Response, error) {
	return f.reply("GET", path, nil)
}
func (f *fakeClient) Post(_ context.Context, path string, body any) (*client.Response, error) {
	return f.reply("POST", path, body)
}
func (f *fakeClient) Put(_ context.Context, path string, body any) (*client.Response, error) {
	return f.reply("PUT", path, body)
}
func (f *fakeClient) Delete(_ context.Context, path string) (*client.Response, error) {
	return f.reply("DELETE", path, nil)
}

func TestHTTPRepository_Paths(t *testing.T) {
	ctx := context.Background()

	f := &fakeClient{respBody: `[{"id":1,"name":"a"}]`}
	r := NewHTTPRepository(f)
	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "GET /users", f.method+" "+f.path)

	f = &fakeClient{respBody: `{"id":5,"name":"a"}`}
	r = NewHTTPRepository(f)
	_, err = r.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "GET /users/5", f.method+" "+f.path)

	_, err = r.Update(ctx, 5, models.User{ID: 1, Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, "PUT /users/5", f.method+" "+f.path)
	assert.Equal(t, int64(5), f.body.(models.User).ID, "path id wins over body id")

	require.NoError(t, r.Delete(ctx, 5))
	assert.Equal(t, "DELETE /users/5", f.method+" "+f.path)
	assert.Equal(t, 3, f.calls, "one transport call per operation")
}

func TestHTTPRepository_CreateDropsClientID(t *testing.T) {
	f := &fakeClient{respBody: `{"id":11,"name":"Nicholas"}`}
	r := NewHTTPRepository(f)

	got, err := r.Create(context.Background(), models.User{ID: 999, Name: "Nicholas"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "POST /users", f.method+" "+f.path)
	assert.Equal(t, int64(0), f.body.(models.User).ID)
}

func TestHTTPRepository_PassesTransportErrorUnchanged(t *testing.T) {
	orig := client.Classify(context.Background(), nil, 404, nil)
	f := &fakeClient{err: orig}
	r := NewHTTPRepository(f)

	_, err := r.GetByID(context.Background(), 1)
	require.Same(t, orig, err)

	err = r.Delete(context.Background(), 1)
	require.Same(t, orig, err)
	assert.Equal(t, 2, f.calls)
}

func TestHTTPRepository_DecodeFailureIsUnknown(t *testing.T) {
	r := NewHTTPRepository(&fakeClient{respBody: `{"id": "not-a-number"`})

	_, err := r.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, client.ErrUnknown)

	var e *client.Error
	require.True(t, errors.As(err, &e))
	assert.Contains(t, e.Message, "decode response")

	_, err = NewHTTPRepository(&fakeClient{respBody: `{}`}).List(context.Background())
	require.ErrorIs(t, err, client.ErrUnknown, "object where a list is expected")
}

func TestHTTPRepository_EmptyListIsNotNil(t *testing.T) {
	list, err := NewHTTPRepository(&fakeClient{respBody: `null`}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func newAPIRepository(t *testing.T) *HTTPRepository {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewRouter(mockapi.NewStore(mockapi.SampleUsers()...), nil))
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(client.Config{BaseURL: srv.URL, Production: true}, nil)
	require.NoError(t, err)
	return NewHTTPRepository(c)
}

func TestHTTPRepository_AgainstMockAPI(t *testing.T) {
	ctx := context.Background()
	r := newAPIRepository(t)

	u := mockapi.SampleUsers()[0]
	u.Name = "Patricia Lebsack"

	created, err := r.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	want := u
	want.ID = created.ID
	assert.Equal(t, want, got)

	got.Email = "patricia@kory.org"
	updated, err := r.Update(ctx, got.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "patricia@kory.org", updated.Email)

	require.NoError(t, r.Delete(ctx, created.ID))
	err = r.Delete(ctx, created.ID)
	require.ErrorIs(t, err, client.ErrNotFound, "second delete is not idempotent")

	_, err = r.GetByID(ctx, 42)
	require.ErrorIs(t, err, client.ErrNotFound)

	_, err = r.Create(ctx, models.User{})
	require.ErrorIs(t, err, client.ErrBadRequest)
}
