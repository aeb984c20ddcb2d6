package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupLoginAttemptPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS login_attempts (
		username VARCHAR(50) PRIMARY KEY,
		attempt_count INT NOT NULL,
		last_attempt TIMESTAMPTZ NOT NULL,
		blocked_until TIMESTAMPTZ
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestLoginAttemptRepository_UpsertAndGet(t *testing.T) {
	db, teardown := setupLoginAttemptPostgresContainer(t)
	defer teardown()

	writeRepo := NewLoginAttemptWriteRepository(db)
	readRepo := NewLoginAttemptReadRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("absent returns nil without error", func(t *testing.T) {
		attempt, err := readRepo.Get(ctx, "john")
		assert.NoError(t, err)
		assert.Nil(t, attempt)
	})

	t.Run("insert first failure", func(t *testing.T) {
		err := writeRepo.Upsert(ctx, "john", 1, now, nil)
		assert.NoError(t, err)

		attempt, err := readRepo.Get(ctx, "john")
		assert.NoError(t, err)
		assert.NotNil(t, attempt)
		assert.Equal(t, 1, attempt.AttemptCount)
		assert.WithinDuration(t, now, attempt.LastAttempt, time.Millisecond)
		assert.Nil(t, attempt.BlockedUntil)
	})

	t.Run("update sets lockout", func(t *testing.T) {
		blockedUntil := now.Add(time.Hour)
		err := writeRepo.Upsert(ctx, "john", 3, now, &blockedUntil)
		assert.NoError(t, err)

		attempt, err := readRepo.Get(ctx, "john")
		assert.NoError(t, err)
		assert.NotNil(t, attempt)
		assert.Equal(t, 3, attempt.AttemptCount)
		assert.NotNil(t, attempt.BlockedUntil)
		assert.WithinDuration(t, blockedUntil, *attempt.BlockedUntil, time.Millisecond)
	})
}

func TestLoginAttemptRepository_Delete(t *testing.T) {
	db, teardown := setupLoginAttemptPostgresContainer(t)
	defer teardown()

	writeRepo := NewLoginAttemptWriteRepository(db)
	readRepo := NewLoginAttemptReadRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()

	err := writeRepo.Upsert(ctx, "john", 2, now, nil)
	assert.NoError(t, err)

	err = writeRepo.Delete(ctx, "john")
	assert.NoError(t, err)

	attempt, err := readRepo.Get(ctx, "john")
	assert.NoError(t, err)
	assert.Nil(t, attempt)

	// Deleting an absent record is not an error
	err = writeRepo.Delete(ctx, "john")
	assert.NoError(t, err)
}
