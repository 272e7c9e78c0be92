package rvnhttpx

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// RequestIDHeader carries a client generated id used to correlate a request
// with server side logs.
const RequestIDHeader = "Raven-Client-Request-Id"

type RequestBuilder struct {
	UserAgent     string
	Endpoint      string
	BasicAuthUser string
	BasicAuthPass string
}

func (h RequestBuilder) NewRequest(
	ctx context.Context,
	method, path, contentType, requestID string,
	params url.Values,
	body io.Reader,
) (*http.Request, error) {
	uri := h.Endpoint + path
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	if h.BasicAuthUser != "" || h.BasicAuthPass != "" {
		req.SetBasicAuth(h.BasicAuthUser, h.BasicAuthPass)
	}

	return req, nil
}
