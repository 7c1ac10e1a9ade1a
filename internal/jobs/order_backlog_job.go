package jobs

import (
	"context"
	"log/slog"

	"dinedash/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderBacklogJob periodically logs how many orders sit in each active
// status. It is observability only and never mutates state; operators watch
// the ready-for-pickup count to spot orders no courier is taking.
type OrderBacklogJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderBacklogJob creates a job that reports the order backlog every minute.
func NewOrderBacklogJob(db *gorm.DB, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_backlog_job"),
	}
}

// Start begins the backlog job, running at the top of every minute.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		counts, err := j.backlogCounts(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order backlog",
			"placed", counts[order.Placed],
			"ready_for_pickup", counts[order.ReadyForPickup],
			"in_transit", counts[order.InTransit],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}

func (j *OrderBacklogJob) backlogCounts(ctx context.Context) (map[order.Status]int64, error) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) FROM orders
		WHERE status IN (?, ?, ?)
		GROUP BY status
	`, order.Placed, order.ReadyForPickup, order.InTransit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64)

	for rows.Next() {
		var status int
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = count
	}

	return counts, rows.Err()
}
