package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireBeforeInit(t *testing.T) {
	p := NewProvider()

	conn, err := p.Acquire(context.Background())
	require.ErrorIs(t, err, ErrNotInitialized)
	assert.Nil(t, conn)
}

func TestInitRejectsMalformedDSN(t *testing.T) {
	p := NewProvider()

	err := p.Init(context.Background(), "://not-a-dsn")
	require.Error(t, err)
	assert.Nil(t, p.Pool())
}

func TestTeardownWithoutInit(t *testing.T) {
	p := NewProvider()

	// Must not panic and must leave the provider unusable.
	p.Teardown()
	p.Teardown()

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestPoolNilUntilInit(t *testing.T) {
	p := NewProvider()
	assert.Nil(t, p.Pool())
}
