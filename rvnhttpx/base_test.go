package rvnhttpx

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilderNewRequest(t *testing.T) {
	builder := RequestBuilder{
		UserAgent:     "useragent",
		Endpoint:      "http://localhost:8080",
		BasicAuthUser: "user",
		BasicAuthPass: "pass",
	}

	params := url.Values{}
	params.Set("query", "Name:Bob")

	req, err := builder.NewRequest(context.Background(), http.MethodGet, "/indexes/Users", "", "req-1", params, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/indexes/Users?query=Name%3ABob", req.URL.String())
	assert.Equal(t, "useragent", req.Header.Get("User-Agent"))
	assert.Equal(t, "req-1", req.Header.Get(RequestIDHeader))
	assert.Empty(t, req.Header.Get("Content-Type"))

	user, pass, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "user", user)
	assert.Equal(t, "pass", pass)
}

func TestRequestBuilderNoParams(t *testing.T) {
	req, err := RequestBuilder{Endpoint: "http://localhost"}.NewRequest(
		context.Background(), http.MethodPost, "/queries", "application/json", "", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost/queries", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Empty(t, req.Header.Get(RequestIDHeader))

	_, _, ok := req.BasicAuth()
	assert.False(t, ok)
}
