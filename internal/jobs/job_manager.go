package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderalerts/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	orderProcessingJob *OrderProcessingJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderProcessingJob: NewOrderProcessingJob(processOrdersHandler, schedule, timeout, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order processing job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running passes.
func (jm *JobManager) StopAll() {
	jm.orderProcessingJob.Stop()
}
