package jobs

import (
	"context"
	"log/slog"

	"gatepass/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReturnOverdueJob runs the scheduled sweep that flags returnable parcels
// whose return date has passed without a confirmed return.
type ReturnOverdueJob struct {
	handler  commands.MarkReturnsOverdueCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReturnOverdueJob creates the overdue sweep job. The schedule is a cron
// expression with seconds, typically once a day shortly after midnight.
func NewReturnOverdueJob(handler commands.MarkReturnsOverdueCommandHandler, schedule string, logger *slog.Logger) *ReturnOverdueJob {
	return &ReturnOverdueJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "return_overdue_job"),
	}
}

// Start begins the overdue sweep on its configured schedule.
func (j *ReturnOverdueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewMarkReturnsOverdueCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Return overdue job failed to build command", "error", cmdErr)
			return
		}

		marked, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Return overdue job failed", "error", handleErr)
			return
		}

		if marked > 0 {
			j.logger.InfoContext(ctx, "Return overdue sweep marked parcels", "count", marked)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Return overdue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep.
func (j *ReturnOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Return overdue job stopped")
}
