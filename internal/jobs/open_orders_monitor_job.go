package jobs

import (
	"context"
	"log/slog"

	"comptoirs/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenOrdersMonitorJob periodically reports how many orders are still
// awaiting shipment. Runs every minute to give operators fulfillment
// backlog visibility in the logs.
type OpenOrdersMonitorJob struct {
	handler queries.GetNotShippedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersMonitorJob creates a new job for monitoring open orders.
// Uses GetNotShippedOrdersQueryHandler to count the shipment backlog every minute.
func NewOpenOrdersMonitorJob(handler queries.GetNotShippedOrdersQueryHandler, logger *slog.Logger) *OpenOrdersMonitorJob {
	return &OpenOrdersMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "open_orders_monitor_job"),
	}
}

// Start begins the open orders monitor job to run every minute.
func (j *OpenOrdersMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetNotShippedOrdersQuery()

		openOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders monitor job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Shipment backlog", "open_orders", len(openOrders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders monitor job started (running every minute)")
	return nil
}

// Stop stops the open orders monitor job.
func (j *OpenOrdersMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders monitor job stopped")
}
