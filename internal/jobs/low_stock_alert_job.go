package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans inventory and logs every item at or
// below the configured quantity threshold. The job only reads; restocking is
// an operator decision.
type LowStockAlertJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob creates a new job for low-stock alerting.
// Uses GetLowStockItemsQueryHandler to scan inventory on the given cron
// schedule (standard five-field expression).
func NewLowStockAlertJob(
	handler queries.GetLowStockItemsQueryHandler,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low-stock alert job on its configured schedule.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockItemsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job misconfigured", "error", queryErr)
			return
		}

		items, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", handleErr)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Low stock",
				"sku", item.Sku,
				"name", item.Name,
				"quantity", item.Quantity,
				"location", item.Location,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops the low-stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
