package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"toolbox/pkg/cache"
)

func setupRedis(t *testing.T) *cache.Redis {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	r, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:   fmt.Sprintf("%s:%d", host, port.Int()),
		Prefix: "test:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestRedis_GetSet(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	_, found, err := r.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.Set(ctx, "k", []byte(`{"value":"6"}`), time.Minute))

	got, found, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"value":"6"}`, string(got))
}

func TestRedis_Expiry(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "short", []byte("1"), time.Second))
	require.Eventually(t, func() bool {
		_, found, err := r.Get(ctx, "short")

		return err == nil && !found
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := cache.NewRedis(ctx, cache.RedisOptions{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
