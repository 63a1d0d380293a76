package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, seed ...models.User) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewStore(seed...), nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestRouter_ListReturnsSeedInOrder(t *testing.T) {
	srv := newServer(t, SampleUsers()...)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.User
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestRouter_CreateAssignsIDIgnoringClientValue(t *testing.T) {
	srv := newServer(t, SampleUsers()...)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/users", models.User{ID: 99, Name: "Chelsey Dietrich"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.User
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Chelsey Dietrich", got.Name)
}

func TestRouter_Errors(t *testing.T) {
	srv := newServer(t, SampleUsers()...)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{name: "unknown id", method: http.MethodGet, path: "/users/42", want: http.StatusNotFound},
		{name: "non numeric id", method: http.MethodGet, path: "/users/abc", want: http.StatusBadRequest},
		{name: "update unknown", method: http.MethodPut, path: "/users/42", body: models.User{Name: "x"}, want: http.StatusNotFound},
		{name: "delete unknown", method: http.MethodDelete, path: "/users/42", want: http.StatusNotFound},
		{name: "create without name", method: http.MethodPost, path: "/users", body: models.User{Email: "a@b"}, want: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/posts", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRouter_MalformedJSON(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/users", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_UpdateAndDelete(t *testing.T) {
	srv := newServer(t, SampleUsers()...)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/users/2", models.User{Name: "Ervin H."})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.User
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, "Ervin H.", updated.Name)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/users/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/users/2", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
