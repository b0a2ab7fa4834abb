package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/svcbase/item-service/internal/commons"
	"github.com/svcbase/item-service/internal/logger"
	"github.com/svcbase/item-service/internal/metrics"
	"github.com/svcbase/item-service/internal/repository"
)

// StatsReporter refreshes the items_total gauge on a schedule so the store
// size is visible in /metrics between requests.
type StatsReporter struct {
	repo    repository.ItemRepository
	metrics *metrics.Metrics
	cron    *cron.Cron
}

func NewStatsReporter(repo repository.ItemRepository, m *metrics.Metrics) *StatsReporter {
	c := cron.New()
	sr := &StatsReporter{
		repo:    repo,
		metrics: m,
		cron:    c,
	}

	_, err := c.AddFunc(commons.StatsReportSchedule, sr.reportWrapper)
	if err != nil {
		logger.Errorf("failed to add cron job: %v", err)
	}

	return sr
}

func (sr *StatsReporter) Start(ctx context.Context) error {
	// prime the gauge so it does not sit at zero until the first tick
	sr.reportWrapper()

	sr.cron.Start()

	go func() {
		<-ctx.Done()
		sr.cron.Stop()
	}()

	return nil
}

func (sr *StatsReporter) Entries() []cron.Entry {
	return sr.cron.Entries()
}

func (sr *StatsReporter) report(ctx context.Context) error {
	count, err := sr.repo.Count(ctx)
	if err != nil {
		return err
	}
	sr.metrics.SetItemCount(count)
	logger.Debugf("store stats: %d items", count)
	return nil
}

func (sr *StatsReporter) reportWrapper() {
	ctx := context.Background()
	if err := sr.report(ctx); err != nil {
		logger.Errorf("failed to report store stats: %v", err)
	}
}
