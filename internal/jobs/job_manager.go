// Package jobs provides scheduled background tasks for the gate pass system,
// implemented with github.com/robfig/cron/v3. Jobs are managed through
// JobManager which starts and stops them as a group.
package jobs

import (
	"fmt"
	"log/slog"

	"gatepass/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	returnOverdueJob *ReturnOverdueJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	markReturnsOverdueHandler commands.MarkReturnsOverdueCommandHandler,
	overdueSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		returnOverdueJob: NewReturnOverdueJob(markReturnsOverdueHandler, overdueSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.returnOverdueJob.Start(); err != nil {
		return fmt.Errorf("failed to start return overdue job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.returnOverdueJob.Stop()
}
