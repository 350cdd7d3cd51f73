// Package suite boots a throwaway Redis container for repository tests and
// tears it down with the test.
package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

// containerLifetime is a hard kill switch so crashed runs cannot leak
// containers; bootTimeout bounds both the retry loop and the test context.
const (
	containerLifetime = 120
	bootTimeout       = 120 * time.Second
)

const (
	gameStoreImage = "redis"
	gameStoreTag   = "alpine"
	gameStorePort  = "6379/tcp"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New starts a fresh game store and returns a context bounded by the boot
// timeout. Every suite gets its own flushed database.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger = logger.With("component", "test-suite")

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: gameStoreImage,
		Tag:        gameStoreTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start game store container: %v", err)
	}

	// never returns an error
	_ = container.Expire(containerLifetime)

	addr := container.GetHostPort(gameStorePort)

	// the store needs a moment before it accepts connections
	pool.MaxWait = bootTimeout

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
		})
		return client.Ping(ctx).Err()
	}); err != nil {
		if err = pool.Purge(container); err != nil {
			t.Fatalf("could not purge game store container: %v", err)
		}

		t.Fatalf("could not connect to game store: %v", err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush game store: %v", err)
	}

	t.Cleanup(func() {
		t.Helper()

		if err = pool.Purge(container); err != nil {
			t.Fatalf("could not purge game store container: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}
