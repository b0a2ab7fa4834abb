package worker

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svcbase/item-service/internal/metrics"
	"github.com/svcbase/item-service/internal/repository"
)

func TestNewStatsReporterRegistersJob(t *testing.T) {
	sr := NewStatsReporter(repository.NewMemoryItemRepository(), metrics.New())
	assert.Len(t, sr.Entries(), 1)
}

func TestReportUpdatesGauge(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	m := metrics.New()
	sr := NewStatsReporter(repo, m)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "a", nil)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "b", nil)
	require.NoError(t, err)

	require.NoError(t, sr.report(ctx))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rr.Body.String(), "items_total 2")
}

func TestStartPrimesGaugeAndStopsOnCancel(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	m := metrics.New()
	sr := NewStatsReporter(repo, m)

	_, err := repo.Insert(context.Background(), "a", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, sr.Start(ctx))
	cancel()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rr.Body.String(), "items_total 1")
}
