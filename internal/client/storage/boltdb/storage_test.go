package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestStorage создает storage во временном файле, закрывается автоматически
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "weekendly-test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNew_CreatesBuckets(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Все операции должны работать на свежей базе без ошибок
	plans, err := s.GetAllPlans(ctx)
	require.NoError(t, err)
	require.Empty(t, plans)

	items, err := s.GetItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	namespaces, err := s.ListNamespaces(ctx)
	require.NoError(t, err)
	require.Empty(t, namespaces)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "weekendly-test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, s.Close())
}
