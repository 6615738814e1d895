package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	wizardCleanupJob *WizardCleanupJob
}

// WizardCleanupConfig schedules the wizard purge.
type WizardCleanupConfig struct {
	Schedule string
	TTL      time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purgeWizardsHandler PurgeExpiredWizardsHandler,
	cleanup WizardCleanupConfig,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		wizardCleanupJob: NewWizardCleanupJob(purgeWizardsHandler, cleanup.Schedule, cleanup.TTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.wizardCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start wizard cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.wizardCleanupJob.Stop()
}
