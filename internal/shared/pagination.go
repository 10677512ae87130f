// Package shared holds small helpers used across modules.
package shared

import (
	"net/url"
	"strconv"
)

const (
	// DefaultSkip and DefaultLimit apply when the query omits the parameter.
	DefaultSkip  = 0
	DefaultLimit = 100
)

// ListParams carries offset/limit values for collection listings. Values are
// passed through to the persistence layer unchecked.
type ListParams struct {
	Skip  int
	Limit int
}

// ParseListParams reads skip/limit from query values, falling back to the
// defaults when a parameter is absent or not numeric.
func ParseListParams(query url.Values) ListParams {
	params := ListParams{Skip: DefaultSkip, Limit: DefaultLimit}
	if raw := query.Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Skip = v
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Limit = v
		}
	}
	return params
}
