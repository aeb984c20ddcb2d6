package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestCooldownRepository_GetLastSend_Empty(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewCooldownRepository(client, 5*time.Minute)
	ctx := context.Background()

	last, err := repo.GetLastSend(ctx, "203.0.113.7")
	assert.NoError(t, err)
	assert.Nil(t, last)
}

func TestCooldownRepository_SetAndGetLastSend(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewCooldownRepository(client, 5*time.Minute)
	ctx := context.Background()

	at := time.Now().UTC().Truncate(time.Millisecond)

	err := repo.SetLastSend(ctx, "203.0.113.7", at)
	assert.NoError(t, err)

	last, err := repo.GetLastSend(ctx, "203.0.113.7")
	assert.NoError(t, err)
	assert.NotNil(t, last)
	assert.True(t, at.Equal(*last))

	// Identities do not share records
	other, err := repo.GetLastSend(ctx, "203.0.113.8")
	assert.NoError(t, err)
	assert.Nil(t, other)
}

func TestCooldownRepository_RecordExpiresWithWindow(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewCooldownRepository(client, time.Second)
	ctx := context.Background()

	err := repo.SetLastSend(ctx, "203.0.113.7", time.Now().UTC())
	assert.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	last, err := repo.GetLastSend(ctx, "203.0.113.7")
	assert.NoError(t, err)
	assert.Nil(t, last)
}

func TestCooldownRepository_OverwriteKeepsLatest(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewCooldownRepository(client, 5*time.Minute)
	ctx := context.Background()

	first := time.Now().UTC().Add(-time.Minute).Truncate(time.Millisecond)
	second := time.Now().UTC().Truncate(time.Millisecond)

	assert.NoError(t, repo.SetLastSend(ctx, "203.0.113.7", first))
	assert.NoError(t, repo.SetLastSend(ctx, "203.0.113.7", second))

	last, err := repo.GetLastSend(ctx, "203.0.113.7")
	assert.NoError(t, err)
	assert.NotNil(t, last)
	assert.True(t, second.Equal(*last))
}
