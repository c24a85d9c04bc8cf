package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigboard/internal/session"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(session.StaticToken("tok-123")))
	_, err := client.Get(context.Background(), "/jobs", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthHeaderWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenSource(session.StaticToken("")))
	_, err := client.Get(context.Background(), "/jobs", nil)
	require.NoError(t, err)
	assert.False(t, hasAuth, "unexpected Authorization header: %q", gotAuth)
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"_id":"J1","title":"Backend Engineer"},"message":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	env, err := client.Get(context.Background(), "/jobs/J1", nil)
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "ok", env.Message)
	assert.JSONEq(t, `{"_id":"J1","title":"Backend Engineer"}`, string(env.Data))
}

func TestClientQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	q := url.Values{}
	q.Set("category", "Engineering")
	q.Set("page", "2")
	_, err := client.Get(context.Background(), "/jobs", q)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", gotQuery.Get("category"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestClientHTTPErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Job not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "/jobs/missing", nil)
	require.Error(t, err)

	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Job not found")
}

func TestClientErrorPredicates(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, IsUnauthorized},
		{http.StatusForbidden, IsForbidden},
		{http.StatusConflict, IsConflict},
		{http.StatusUnauthorized, IsAccessDenied},
		{http.StatusForbidden, IsAccessDenied},
	}
	for _, tt := range tests {
		err := error(&Error{Status: tt.status})
		assert.True(t, tt.check(err), "status %d", tt.status)
	}
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsAccessDenied(&Error{Status: http.StatusNotFound}))
}

func TestClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "/jobs", nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClientTransportErrorIsNotAPIError(t *testing.T) {
	// Point at a closed server so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(context.Background(), "/jobs", nil)
	require.Error(t, err)
	_, ok := StatusOf(err)
	assert.False(t, ok)
}

func TestClientContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL)
	_, err := client.Get(ctx, "/jobs", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientGetIntoDecodesTopLevelFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"approved":true,"status":"approved"}`))
	}))
	defer srv.Close()

	var dest struct {
		Success  bool   `json:"success"`
		Approved bool   `json:"approved"`
		Status   string `json:"status"`
	}
	client := NewClient(srv.URL)
	err := client.GetInto(context.Background(), "/employers/status", nil, &dest)
	require.NoError(t, err)
	assert.True(t, dest.Approved)
	assert.Equal(t, "approved", dest.Status)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"_id":"P1"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	env, err := client.Post(context.Background(), "/projects", map[string]string{"title": "API rework"})
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"title":"API rework"}`, string(gotBody))
}
