package rvnqueryx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rvncorex/rvncorex/rvnhttpx"
	"github.com/rvncorex/rvncorex/zaputils"
	"go.uber.org/zap"
)

// Querier assembles the HTTP requests that run an IndexQuery against an
// index. It never sends them.
type Querier struct {
	Logger    *zap.Logger
	UserAgent string
	Endpoint  string
	Username  string
	Password  string
}

func (h Querier) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func indexPath(indexName string) string {
	segments := strings.Split(indexName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return "/indexes/" + strings.Join(segments, "/")
}

func (h Querier) NewQueryRequest(ctx context.Context, indexName string, q *IndexQuery) (*http.Request, error) {
	if indexName == "" {
		return nil, errors.New("index name must not be empty")
	}

	params, err := q.EncodeParams()
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()
	req, err := rvnhttpx.RequestBuilder{
		UserAgent:     h.UserAgent,
		Endpoint:      h.Endpoint,
		BasicAuthUser: h.Username,
		BasicAuthPass: h.Password,
	}.NewRequest(ctx, http.MethodGet, indexPath(indexName), "", requestID, params, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query request")
	}

	assembledRequests.Add(ctx, 1)
	h.logger().Debug("assembled query request",
		zaputils.IndexName("index", indexName),
		zaputils.QueryText("query", q.Query),
		zap.String("request-id", requestID),
		zap.Bool("page-size-set", q.PageSizeSet()))

	return req, nil
}
