package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/models"
)

func testEntry(url string, body string) *models.CacheEntry {
	return &models.CacheEntry{
		Method:   "GET",
		URL:      url,
		Status:   200,
		Headers:  map[string]string{"Content-Type": "application/json"},
		Body:     []byte(body),
		StoredAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestPutEntry_GetEntry_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entry := testEntry("https://example.com/app.js", `console.log("hi")`)
	require.NoError(t, s.PutEntry(ctx, "static-v1", entry))

	got, err := s.GetEntry(ctx, "static-v1", "GET", "https://example.com/app.js")
	require.NoError(t, err)
	// Снимок возвращается байт-в-байт
	assert.Equal(t, entry.Body, got.Body)
	assert.Equal(t, entry.Headers, got.Headers)
	assert.Equal(t, 200, got.Status)
}

func TestGetEntry_Miss(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Промах в существующем namespace
	require.NoError(t, s.PutEntry(ctx, "static-v1", testEntry("https://example.com/a.js", "a")))
	_, err := s.GetEntry(ctx, "static-v1", "GET", "https://example.com/b.js")
	assert.ErrorIs(t, err, storage.ErrNotCached)

	// Отсутствующий namespace — тоже промах
	_, err = s.GetEntry(ctx, "dynamic-v1", "GET", "https://example.com/a.js")
	assert.ErrorIs(t, err, storage.ErrNotCached)
}

func TestPutEntry_OverwritesInPlace(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.PutEntry(ctx, "dynamic-v1", testEntry("https://example.com/", "old")))
	require.NoError(t, s.PutEntry(ctx, "dynamic-v1", testEntry("https://example.com/", "new")))

	got, err := s.GetEntry(ctx, "dynamic-v1", "GET", "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Body)
}

func TestNamespaces_IsolatedByName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.PutEntry(ctx, "static-v1", testEntry("https://example.com/a.js", "v1")))
	require.NoError(t, s.PutEntry(ctx, "static-v2", testEntry("https://example.com/a.js", "v2")))

	got, err := s.GetEntry(ctx, "static-v1", "GET", "https://example.com/a.js")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got.Body)

	got, err = s.GetEntry(ctx, "static-v2", "GET", "https://example.com/a.js")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got.Body)
}

func TestDeleteNamespace(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.PutEntry(ctx, "static-v1", testEntry("https://example.com/a.js", "a")))
	require.NoError(t, s.PutEntry(ctx, "dynamic-v1", testEntry("https://example.com/", "index")))

	names, err := s.ListNamespaces(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"static-v1", "dynamic-v1"}, names)

	require.NoError(t, s.DeleteNamespace(ctx, "static-v1"))

	// Записи старого поколения недостижимы
	_, err = s.GetEntry(ctx, "static-v1", "GET", "https://example.com/a.js")
	assert.ErrorIs(t, err, storage.ErrNotCached)

	names, err = s.ListNamespaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dynamic-v1"}, names)

	// Повторное удаление — no-op
	require.NoError(t, s.DeleteNamespace(ctx, "static-v1"))
}
