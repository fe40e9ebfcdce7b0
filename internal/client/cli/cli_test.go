package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/auth"
	"github.com/iudanet/weekendly/internal/client/cache"
	"github.com/iudanet/weekendly/internal/client/data"
	"github.com/iudanet/weekendly/internal/client/engine"
	"github.com/iudanet/weekendly/internal/client/iocli"
	"github.com/iudanet/weekendly/internal/client/netmon"
	"github.com/iudanet/weekendly/internal/client/storage"
	clientsync "github.com/iudanet/weekendly/internal/client/sync"
	"github.com/iudanet/weekendly/internal/models"
)

// capturedIO собирает весь вывод команды в буфер
type capturedIO struct {
	*iocli.IOMock
	out strings.Builder
}

func newCapturedIO(inputs ...string) *capturedIO {
	c := &capturedIO{}
	inputIdx := 0

	c.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&c.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if inputIdx >= len(inputs) {
				return "", fmt.Errorf("no more scripted inputs")
			}
			input := inputs[inputIdx]
			inputIdx++
			return input, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if inputIdx >= len(inputs) {
				return "", fmt.Errorf("no more scripted inputs")
			}
			input := inputs[inputIdx]
			inputIdx++
			return input, nil
		},
		WriteFunc: func(p []byte) (int, error) {
			c.out.Write(p)
			return len(p), nil
		},
	}
	return c
}

type cliEnv struct {
	cli         *Cli
	io          *capturedIO
	plans       *data.ServiceMock
	coordinator *clientsync.ServiceMock
	metadata    *storage.MetadataStorageMock
	apiClient   *clientapi.ClientAPIMock
	fetcher     *cache.FetcherMock
}

func newCliEnv(t *testing.T, inputs ...string) *cliEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	env := &cliEnv{io: newCapturedIO(inputs...)}

	env.plans = &data.ServiceMock{}
	env.coordinator = &clientsync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 0, nil },
		DrainFunc: func(ctx context.Context) (*clientsync.DrainResult, error) {
			return &clientsync.DrainResult{}, nil
		},
	}
	env.metadata = &storage.MetadataStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
		GetLastDrainTimeFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	env.apiClient = &clientapi.ClientAPIMock{}
	env.fetcher = &cache.FetcherMock{
		FetchFunc: func(ctx context.Context, req cache.Request) (*cache.Response, error) {
			return &cache.Response{Status: 200, Body: []byte("body")}, nil
		},
	}

	monitor := netmon.New(nil, logger, time.Minute)
	classifier := cache.NewClassifier(nil)
	executor := cache.NewExecutor(memCacheStore(), env.fetcher, classifier, monitor, logger, "1")
	eng := engine.New(monitor, executor, env.plans, env.coordinator, nil, logger)

	env.cli = New(Deps{
		IO:          env.io,
		Engine:      eng,
		Monitor:     monitor,
		AuthService: auth.NewService(env.apiClient, env.metadata),
		Plans:       env.plans,
		Coordinator: env.coordinator,
		Metadata:    env.metadata,
		APIClient:   env.apiClient,
		Logger:      logger,
		DrainCron:   "@every 5m",
	})
	return env
}

func memCacheStore() *storage.CacheStorageMock {
	type key struct{ ns, k string }
	entries := make(map[key]*models.CacheEntry)
	return &storage.CacheStorageMock{
		PutEntryFunc: func(ctx context.Context, namespace string, entry *models.CacheEntry) error {
			entries[key{namespace, models.CacheKey(entry.Method, entry.URL)}] = entry
			return nil
		},
		GetEntryFunc: func(ctx context.Context, namespace, method, url string) (*models.CacheEntry, error) {
			if entry, ok := entries[key{namespace, models.CacheKey(method, url)}]; ok {
				return entry, nil
			}
			return nil, storage.ErrNotCached
		},
		ListNamespacesFunc: func(ctx context.Context) ([]string, error) { return nil, nil },
		DeleteNamespaceFunc: func(ctx context.Context, namespace string) error {
			return nil
		},
	}
}

func TestRunAdd(t *testing.T) {
	env := newCliEnv(t)
	env.plans.UpsertFunc = func(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
		plan.ID = "plan-1"
		plan.SyncStatus = models.SyncStatusPending
		return plan, nil
	}

	err := env.cli.runAdd(context.Background(), []string{
		"-title", "Поход", "-weekend", "2026-09-05",
		"-activities", "morning:Hike,evening:Movie",
	})
	require.NoError(t, err)

	calls := env.plans.UpsertCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Поход", calls[0].Plan.Title)
	require.Len(t, calls[0].Plan.Activities, 2)
	assert.Equal(t, "morning", calls[0].Plan.Activities[0].Slot)
	assert.Equal(t, "Hike", calls[0].Plan.Activities[0].Name)

	assert.Contains(t, env.io.out.String(), "plan-1")
	assert.Contains(t, env.io.out.String(), "pending")
}

func TestRunAdd_Validation(t *testing.T) {
	env := newCliEnv(t)

	err := env.cli.runAdd(context.Background(), []string{"-weekend", "2026-09-05"})
	assert.ErrorContains(t, err, "missing -title")

	err = env.cli.runAdd(context.Background(), []string{"-title", "x"})
	assert.ErrorContains(t, err, "missing -weekend")

	err = env.cli.runAdd(context.Background(), []string{"-title", "x", "-weekend", "первое сентября"})
	assert.ErrorContains(t, err, "invalid -weekend")

	err = env.cli.runAdd(context.Background(), []string{"-title", "x", "-weekend", "2026-09-05", "-activities", "нет-двоеточия"})
	assert.ErrorContains(t, err, "invalid activity")
}

func TestRunList(t *testing.T) {
	env := newCliEnv(t)
	env.plans.GetAllFunc = func(ctx context.Context) ([]*models.Plan, error) {
		return []*models.Plan{
			{ID: "p1", Title: "Поход", WeekendOf: "2026-09-05", SyncStatus: models.SyncStatusSynced},
			{ID: "p2", Title: "Кино", WeekendOf: "2026-08-29", SyncStatus: models.SyncStatusPending},
		}, nil
	}

	require.NoError(t, env.cli.runList(context.Background()))

	out := env.io.out.String()
	assert.Contains(t, out, "Поход")
	assert.Contains(t, out, "Кино")
	assert.Contains(t, out, "✓ 2026-09-05")
	assert.Contains(t, out, "… 2026-08-29")
}

func TestRunList_Empty(t *testing.T) {
	env := newCliEnv(t)
	env.plans.GetAllFunc = func(ctx context.Context) ([]*models.Plan, error) { return nil, nil }

	require.NoError(t, env.cli.runList(context.Background()))
	assert.Contains(t, env.io.out.String(), "No plans yet")
}

func TestRunGet(t *testing.T) {
	env := newCliEnv(t)
	env.plans.GetFunc = func(ctx context.Context, id string) (*models.Plan, error) {
		return &models.Plan{
			ID:           id,
			Title:        "Поход в горы",
			WeekendOf:    "2026-09-05",
			SyncStatus:   models.SyncStatusSynced,
			LastModified: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
			Activities: []models.Activity{
				{Name: "Hike", Slot: "morning", Notes: "взять воду"},
			},
		}, nil
	}

	require.NoError(t, env.cli.runGet(context.Background(), []string{"p1"}))

	out := env.io.out.String()
	assert.Contains(t, out, "Поход в горы")
	assert.Contains(t, out, "[morning] Hike")
	assert.Contains(t, out, "взять воду")
}

func TestRunGet_MissingArg(t *testing.T) {
	env := newCliEnv(t)
	err := env.cli.runGet(context.Background(), nil)
	assert.ErrorContains(t, err, "missing plan ID")
}

func TestRunDelete_Confirmed(t *testing.T) {
	env := newCliEnv(t, "y")
	env.plans.GetFunc = func(ctx context.Context, id string) (*models.Plan, error) {
		return &models.Plan{ID: id, Title: "Кино", WeekendOf: "2026-09-05"}, nil
	}
	env.plans.DeleteFunc = func(ctx context.Context, id string) error { return nil }

	require.NoError(t, env.cli.runDelete(context.Background(), []string{"p1"}))
	assert.Len(t, env.plans.DeleteCalls(), 1)
}

func TestRunDelete_Cancelled(t *testing.T) {
	env := newCliEnv(t, "n")
	env.plans.GetFunc = func(ctx context.Context, id string) (*models.Plan, error) {
		return &models.Plan{ID: id, Title: "Кино", WeekendOf: "2026-09-05"}, nil
	}

	require.NoError(t, env.cli.runDelete(context.Background(), []string{"p1"}))
	assert.Empty(t, env.plans.DeleteCalls())
	assert.Contains(t, env.io.out.String(), "Cancelled")
}

func TestRunSync(t *testing.T) {
	env := newCliEnv(t)
	env.coordinator.DrainFunc = func(ctx context.Context) (*clientsync.DrainResult, error) {
		return &clientsync.DrainResult{Attempted: 2, Succeeded: 2}, nil
	}

	require.NoError(t, env.cli.runSync(context.Background()))

	out := env.io.out.String()
	assert.Contains(t, out, "Attempted: 2")
	assert.Contains(t, out, "Succeeded: 2")
}

func TestRunSync_EmptyQueue(t *testing.T) {
	env := newCliEnv(t)

	require.NoError(t, env.cli.runSync(context.Background()))
	assert.Contains(t, env.io.out.String(), "queue is empty")
}

func TestRunStatus_NotAuthenticated(t *testing.T) {
	env := newCliEnv(t)

	require.NoError(t, env.cli.runStatus(context.Background()))

	out := env.io.out.String()
	assert.Contains(t, out, "not authenticated")
	assert.Contains(t, out, "Last sync pass: never")
}

func TestRunStatus_AuthenticatedWithPending(t *testing.T) {
	env := newCliEnv(t)
	env.metadata.GetAuthFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return &storage.AuthData{Username: "alice"}, nil
	}
	env.coordinator.PendingCountFunc = func(ctx context.Context) (int, error) { return 3, nil }

	require.NoError(t, env.cli.runStatus(context.Background()))

	out := env.io.out.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Pending sync: 3")
}

func TestRunFetch(t *testing.T) {
	env := newCliEnv(t)

	require.NoError(t, env.cli.runFetch(context.Background(), []string{"https://weekendly.example/"}))

	out := env.io.out.String()
	assert.Contains(t, out, "Status: 200")
	assert.Contains(t, out, "Source: network")
	assert.Contains(t, out, "body")
}

func TestParseActivities(t *testing.T) {
	activities, err := parseActivities("morning:Hike, evening:Movie", "")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "evening", activities[1].Slot)
	assert.Equal(t, "Movie", activities[1].Name)

	activities, err = parseActivities("", "notes")
	require.NoError(t, err)
	assert.Nil(t, activities)

	_, err = parseActivities("no-colon", "")
	assert.Error(t, err)
}
