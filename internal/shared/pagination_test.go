package shared

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParamsDefaults(t *testing.T) {
	params := ParseListParams(url.Values{})
	assert.Equal(t, 0, params.Skip)
	assert.Equal(t, 100, params.Limit)
}

func TestParseListParamsValues(t *testing.T) {
	params := ParseListParams(url.Values{"skip": {"5"}, "limit": {"10"}})
	assert.Equal(t, 5, params.Skip)
	assert.Equal(t, 10, params.Limit)
}

func TestParseListParamsNonNumericFallsBack(t *testing.T) {
	params := ParseListParams(url.Values{"skip": {"abc"}, "limit": {"xyz"}})
	assert.Equal(t, DefaultSkip, params.Skip)
	assert.Equal(t, DefaultLimit, params.Limit)
}

func TestParseListParamsPassesNegativesThrough(t *testing.T) {
	// Bounds are not validated here; storage is the arbiter.
	params := ParseListParams(url.Values{"skip": {"-3"}, "limit": {"-1"}})
	assert.Equal(t, -3, params.Skip)
	assert.Equal(t, -1, params.Limit)
}
