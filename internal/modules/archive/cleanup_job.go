package archive

import (
	"time"

	"github.com/rs/zerolog"
)

// CleanupJob purges archived readings past the retention window.
// It should be scheduled to run daily.
type CleanupJob struct {
	repo      *Repository
	retention time.Duration
	log       zerolog.Logger
}

// NewCleanupJob creates a new archive cleanup job.
func NewCleanupJob(repo *Repository, retention time.Duration, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo:      repo,
		retention: retention,
		log:       log.With().Str("job", "archive_cleanup").Logger(),
	}
}

// Run purges every reading older than the retention window.
func (j *CleanupJob) Run() error {
	deleted, err := j.repo.PurgeOlderThan(j.retention)
	if err != nil {
		j.log.Error().Err(err).Msg("Failed to purge old readings")
		return err
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Dur("retention", j.retention).
			Msg("Archive cleanup completed")
	}

	return nil
}

// Name returns the job name for scheduling and logging.
func (j *CleanupJob) Name() string {
	return "archive_cleanup"
}
