package rvnqueryx

import (
	"time"
)

const (
	// DefaultPageSize is the page size used until one is set explicitly.
	DefaultPageSize = 128

	// DefaultWaitForNonStaleResultsTimeout is applied at construction when
	// waiting for non-stale results is requested without a timeout.
	DefaultWaitForNonStaleResultsTimeout = 15 * time.Minute
)

// IndexQueryOptions lists everything that can be set when creating an
// IndexQuery.
type IndexQueryOptions struct {
	// Query is the search expression, it is not interpreted.
	Query string
	// TotalSize and SkippedResults are bookkeeping values reported by the
	// server.
	TotalSize      int
	SkippedResults int
	// PageSize explicitly sets the page size when non-nil.
	PageSize        *int
	DefaultOperator QueryOperator
	// SortHints maps a field name to the type hint the server sorts it by.
	SortHints map[string]string
	// SortFields maps a field name to whether it is sorted descending.
	SortFields map[string]bool
	// Fetch lists the fields to project. Empty fetches whole documents.
	Fetch []string
	// WaitForNonStaleResults makes the server wait for the index to catch up.
	WaitForNonStaleResults bool
	// WaitForNonStaleResultsTimeout bounds the wait. A nil or zero value is
	// replaced with DefaultWaitForNonStaleResultsTimeout when waiting.
	WaitForNonStaleResultsTimeout *time.Duration
}

// IndexQuery describes a single query execution against an index.
type IndexQuery struct {
	Query                         string
	TotalSize                     int
	SkippedResults                int
	DefaultOperator               QueryOperator
	SortHints                     map[string]string
	SortFields                    map[string]bool
	Fetch                         []string
	WaitForNonStaleResults        bool
	WaitForNonStaleResultsTimeout *time.Duration

	pageSize    int
	pageSizeSet bool
}

func NewIndexQuery(opts IndexQueryOptions) *IndexQuery {
	q := &IndexQuery{
		Query:                         opts.Query,
		TotalSize:                     opts.TotalSize,
		SkippedResults:                opts.SkippedResults,
		DefaultOperator:               opts.DefaultOperator,
		SortHints:                     opts.SortHints,
		SortFields:                    opts.SortFields,
		Fetch:                         opts.Fetch,
		WaitForNonStaleResults:        opts.WaitForNonStaleResults,
		WaitForNonStaleResultsTimeout: opts.WaitForNonStaleResultsTimeout,
	}
	if q.SortHints == nil {
		q.SortHints = make(map[string]string)
	}
	if q.SortFields == nil {
		q.SortFields = make(map[string]bool)
	}
	if q.Fetch == nil {
		q.Fetch = []string{}
	}

	if opts.PageSize != nil {
		q.SetPageSize(*opts.PageSize)
	}

	// only applied here, later changes to the wait flag are left to the caller
	if q.WaitForNonStaleResults &&
		(q.WaitForNonStaleResultsTimeout == nil || *q.WaitForNonStaleResultsTimeout == 0) {
		timeout := DefaultWaitForNonStaleResultsTimeout
		q.WaitForNonStaleResultsTimeout = &timeout
	}

	return q
}

func (q *IndexQuery) PageSize() int {
	if !q.pageSizeSet {
		return DefaultPageSize
	}
	return q.pageSize
}

// SetPageSize sets the page size and marks it as explicitly set, even when
// the value equals DefaultPageSize.
func (q *IndexQuery) SetPageSize(pageSize int) {
	q.pageSize = pageSize
	q.pageSizeSet = true
}

// PageSizeSet reports whether the page size was ever set explicitly.
func (q *IndexQuery) PageSizeSet() bool {
	return q.pageSizeSet
}
