package kvport

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/webrequest.net/internal/adapter/logging"
)

func newRepo(t *testing.T) (*KeyValueRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewKeyValueRepository(client, "webrequest:", logging.NewNopLogger()), mr
}

func TestKeyValueRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t)

	require.NoError(t, repo.Ping(ctx))

	_, ok, err := repo.Get(ctx, "websiteRequests")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "websiteRequests", `[{"id":"a"}]`))
	value, ok, err := repo.Get(ctx, "websiteRequests")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)

	raw, err := mr.Get("webrequest:websiteRequests")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, raw, "keys are namespaced")
	assert.Zero(t, mr.TTL("webrequest:websiteRequests"), "values never expire")

	require.NoError(t, repo.Delete(ctx, "websiteRequests"))
	require.NoError(t, repo.Delete(ctx, "websiteRequests"))
	_, ok, err = repo.Get(ctx, "websiteRequests")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyValueRepositoryServerDown(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t)
	mr.Close()

	_, _, err := repo.Get(ctx, "websiteRequests")
	assert.Error(t, err)
	assert.Error(t, repo.Set(ctx, "websiteRequests", "[]"))
}
