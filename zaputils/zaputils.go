package zaputils

import (
	"fmt"

	"go.uber.org/zap"
)

func IndexName(key string, val string) zap.Field {
	return zap.String(key, val)
}

func IndexType(key string, val string) zap.Field {
	return zap.String(key, val)
}

// maxLoggedQueryLen bounds how much of a search expression ends up in logs.
const maxLoggedQueryLen = 256

type LoggableQuery struct {
	Query string
}

func (e LoggableQuery) String() string {
	if len(e.Query) <= maxLoggedQueryLen {
		return e.Query
	}

	return fmt.Sprintf("%s...(%d bytes)", e.Query[:maxLoggedQueryLen], len(e.Query))
}

func QueryText(key string, query string) zap.Field {
	return zap.Stringer(key, LoggableQuery{
		Query: query,
	})
}
