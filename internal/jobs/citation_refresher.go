package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

// PublicationStore is the slice of the publication repository the refresher
// needs.
type PublicationStore interface {
	WithDOIs() ([]models.Publication, error)
	UpdateCitationCount(id uint, count *int) error
}

// CitationSource resolves a DOI to its current citation count, nil when
// unknown.
type CitationSource interface {
	CitationCount(ctx context.Context, doi string) *int
}

// CitationRefresherJob periodically re-fetches citation counts for every
// publication that carries a DOI.
type CitationRefresherJob struct {
	store    PublicationStore
	source   CitationSource
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewCitationRefresherJob(store PublicationStore, source CitationSource, schedule string, logger *zap.Logger) *CitationRefresherJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CitationRefresherJob{
		store:    store,
		source:   source,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the refresh. The job also runs via RunOnce for manual
// triggering.
func (j *CitationRefresherJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.Error("citation refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule citation refresh: %w", err)
	}

	j.cron.Start()
	j.logger.Info("citation refresher started", zap.String("schedule", j.schedule))
	return nil
}

func (j *CitationRefresherJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce walks every publication with a DOI. A nil count from the source
// leaves the stored value untouched so a flaky upstream cannot erase counts.
func (j *CitationRefresherJob) RunOnce(ctx context.Context) error {
	pubs, err := j.store.WithDOIs()
	if err != nil {
		return fmt.Errorf("failed to load publications: %w", err)
	}

	updated := 0
	for _, pub := range pubs {
		if err := ctx.Err(); err != nil {
			return err
		}
		count := j.source.CitationCount(ctx, pub.DOI)
		if count == nil {
			continue
		}
		if pub.CitationCount != nil && *pub.CitationCount == *count {
			continue
		}
		if err := j.store.UpdateCitationCount(pub.ID, count); err != nil {
			j.logger.Error("failed to store citation count",
				zap.Uint("publication_id", pub.ID), zap.Error(err))
			continue
		}
		updated++
	}

	j.logger.Info("citation refresh complete",
		zap.Int("publications", len(pubs)), zap.Int("updated", updated))
	return nil
}
