package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderalerts/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob runs one order processing pass per tick of its schedule.
// A tick that fires while the previous pass is still running is skipped, so passes
// never overlap.
type OrderProcessingJob struct {
	handler  commands.ProcessOrdersCommandHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewOrderProcessingJob creates a job. schedule is a cron spec with an optional
// leading seconds field; timeout bounds every pass (zero means no bound).
func NewOrderProcessingJob(
	handler commands.ProcessOrdersCommandHandler,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *OrderProcessingJob {
	logger = logger.With("component", "order_processing_job")
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderProcessingJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(
				slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
			))),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Run executes a single pass bound by the job timeout and returns its error.
func (j *OrderProcessingJob) Run(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	return j.handler.Handle(ctx, commands.NewProcessOrdersCommand())
}

// Start schedules the job. Returns an error for an unparsable schedule.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(j.ctx); err != nil {
			j.logger.ErrorContext(j.ctx, "Order processing job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Order processing job started", "schedule", j.schedule)
	return nil
}

// Stop cancels a pass in flight and waits for it to return.
func (j *OrderProcessingJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}
