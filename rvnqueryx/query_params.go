package rvnqueryx

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// SortHintPrefix prefixes the parameter name carrying the sort hint of a field.
const SortHintPrefix = "SortHint-"

type indexQueryParams struct {
	Query                         string   `url:"query"`
	Start                         int      `url:"start,omitempty"`
	PageSize                      *int     `url:"pageSize,omitempty"`
	Operator                      string   `url:"operator,omitempty"`
	Fetch                         []string `url:"fetch,omitempty"`
	Sort                          []string `url:"sort,omitempty"`
	WaitForNonStaleResults        bool     `url:"waitForNonStaleResults,omitempty"`
	WaitForNonStaleResultsTimeout string   `url:"waitForNonStaleResultsTimeout,omitempty"`
}

// EncodeParams renders the query as request parameters. The page size is only
// included once it has been set explicitly.
func (q *IndexQuery) EncodeParams() (url.Values, error) {
	p := indexQueryParams{
		Query: q.Query,
		Start: q.SkippedResults,
		Fetch: q.Fetch,
		Sort:  encodeSortFields(q.SortFields),
	}

	if q.PageSizeSet() {
		pageSize := q.PageSize()
		if pageSize < 0 {
			return nil, errors.Wrapf(ErrInvalidPageSize, "page size %d", pageSize)
		}
		p.PageSize = &pageSize
	}

	if q.DefaultOperator != queryOperatorUnset {
		p.Operator = q.DefaultOperator.String()
		if p.Operator == "" {
			return nil, errors.Wrapf(ErrInvalidEnumValue, "default operator has no wire representation for %d", q.DefaultOperator)
		}
	}

	if q.WaitForNonStaleResults {
		p.WaitForNonStaleResults = true
		if q.WaitForNonStaleResultsTimeout != nil {
			p.WaitForNonStaleResultsTimeout = formatTimeSpan(*q.WaitForNonStaleResultsTimeout)
		}
	}

	values, err := query.Values(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode query parameters")
	}

	for _, field := range sortedKeys(q.SortHints) {
		values.Add(SortHintPrefix+field, q.SortHints[field])
	}

	return values, nil
}

func encodeSortFields(sortFields map[string]bool) []string {
	fields := sortedKeys(sortFields)
	sorts := make([]string, 0, len(fields))
	for _, field := range fields {
		if sortFields[field] {
			sorts = append(sorts, "-"+field)
		} else {
			sorts = append(sorts, field)
		}
	}
	return sorts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// formatTimeSpan renders a duration as [d.]hh:mm:ss[.fff].
func formatTimeSpan(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond

	out := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if days > 0 {
		out = fmt.Sprintf("%d.%s", days, out)
	}
	if millis > 0 {
		out = fmt.Sprintf("%s.%03d", out, millis)
	}
	return sign + out
}
