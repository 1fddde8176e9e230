package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressionJob runs the scheduled progression pass that moves
// active delivery units along the shipment lifecycle.
//
// A pass that is still running when the next tick fires is skipped rather
// than stacked, so a slow database never piles up concurrent passes.
type DeliveryProgressionJob struct {
	handler  commands.ProgressDeliveriesCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryProgressionJob creates the progression job with the given tick
// interval.
func NewDeliveryProgressionJob(
	handler commands.ProgressDeliveriesCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *DeliveryProgressionJob {
	return &DeliveryProgressionJob{
		handler:  handler,
		interval: interval,
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "delivery_progression_job"),
	}
}

// Start schedules the progression pass at the configured interval.
func (j *DeliveryProgressionJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		cmd := commands.NewProgressDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progression pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Delivery progression job started", "interval", j.interval.String())
	return nil
}

// Stop stops the progression job and waits for a pass already in flight to
// finish before returning.
func (j *DeliveryProgressionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery progression job stopped")
}
