package jobs

import (
	"fmt"
	"log/slog"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationReplayJob *NotificationReplayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	notificationUoWFactory commands.NotificationUoWFactory,
	cache ports.NotificationCache,
	replaySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationReplayJob: NewNotificationReplayJob(notificationUoWFactory, cache, replaySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationReplayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification replay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationReplayJob.Stop()
}
