package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"user-system/internal/cache"
	"user-system/internal/database"
	"user-system/internal/worker"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Email string `validate:"required,email"`
	}
	require.NoError(t, cv.Validate(&s{Email: "a@x.com"}))
	require.Error(t, cv.Validate(&s{Email: "not-an-email"}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	newWorkerPool = func(n int) worker.Pool {
		called["pool"] = true
		require.Equal(t, 4, n)
		return worker.NewPool(n)
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9090", addr)
		return nil
	}

	setRequiredEnv(t)
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("LISTEN_ADDR", ":9090")

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["pool"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("REDIS_ADDR", "")
	require.Error(t, run())
	t.Setenv("REDIS_ADDR", "addr")
	t.Setenv("REDIS_DB", "")
	require.Error(t, run())

	t.Setenv("REDIS_DB", "bad")
	require.Error(t, run())
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "")
	require.Error(t, run())

	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("ADMIN_USERNAME", "")
	require.Error(t, run())
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "")
	require.Error(t, run())

	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("WORKER_COUNT", "zero")
	require.Error(t, run())
	t.Setenv("WORKER_COUNT", "1")

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	startServer = func(*echo.Echo, string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	setRequiredEnv(t)
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	setRequiredEnv(t)
	main()
	require.Equal(t, 1, exitCode)
}
