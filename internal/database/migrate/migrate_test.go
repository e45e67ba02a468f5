package migrate

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"nestbase-go/internal/database"
)

var testDatabaseURL string

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	testDatabaseURL, err = dbContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("could not get connection string: %v", err)
	}

	code := m.Run()

	if err := dbContainer.Terminate(ctx); err != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
	os.Exit(code)
}

func TestMigrations_UpVersionDown(t *testing.T) {
	db, err := database.New(database.Options{URL: testDatabaseURL})
	require.NoError(t, err)
	defer db.Close()

	_, _, ok, err := Version(db.DB)
	require.NoError(t, err)
	assert.False(t, ok, "fresh database has no version")

	require.NoError(t, RunMigrations(db.DB))
	require.NoError(t, RunMigrations(db.DB), "second run is a no-op")

	version, dirty, ok, err := Version(db.DB)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), version)

	var count int64
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM "user"`))
	assert.Equal(t, int64(0), count)

	require.NoError(t, RollbackMigrations(db.DB))

	var exists bool
	require.NoError(t, db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'user')`))
	assert.False(t, exists)
}
