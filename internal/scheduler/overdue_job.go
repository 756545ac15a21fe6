package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// OverdueSweeper is the part of the invoice use case the job needs.
type OverdueSweeper interface {
	MarkOverdueInvoices(ctx context.Context) (int64, error)
}

// OverdueInvoiceJob periodically moves past-due SENT invoices to OVERDUE.
type OverdueInvoiceJob struct {
	sweeper  OverdueSweeper
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewOverdueInvoiceJob creates the job. Each run is bounded by the interval.
func NewOverdueInvoiceJob(sweeper OverdueSweeper, interval time.Duration, logger *slog.Logger) *OverdueInvoiceJob {
	return &OverdueInvoiceJob{
		sweeper:  sweeper,
		interval: interval,
		timeout:  interval,
		logger:   logger,
	}
}

func (j *OverdueInvoiceJob) Name() string { return "invoice_overdue_sweep" }

func (j *OverdueInvoiceJob) Definition() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

// Execute runs one sweep. Errors are logged; the next run retries.
func (j *OverdueInvoiceJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	n, err := j.sweeper.MarkOverdueInvoices(ctx)
	if err != nil {
		j.logger.Error("overdue sweep failed", slog.Any("error", err))
		return
	}
	j.logger.Info("overdue sweep done",
		slog.Int64("marked", n),
		slog.Duration("took", time.Since(start)))
}
