package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// systemUserID is recorded as the actor on rows created by scheduled runs.
const systemUserID = "system"

// Scheduler runs the recurring-expense generation once per day at a fixed
// hour. It ticks every minute and fires during the first minute of the hour,
// so at most one run happens per day per process.
type Scheduler struct {
	recurring portssvc.RecurringExpenseSvc
	hour      int
	logger    *slog.Logger
}

// New creates a scheduler that fires at the given hour (0-23).
func New(recurring portssvc.RecurringExpenseSvc, hour int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		recurring: recurring,
		hour:      hour,
		logger:    logger,
	}
}

// Start launches the scheduler loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.logger.Info("Recurring expense scheduler started", slog.Int("hour", s.hour))
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastRun time.Time
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Recurring expense scheduler stopped")
				return
			case now := <-ticker.C:
				if now.Hour() != s.hour {
					continue
				}
				if lastRun.Year() == now.Year() && lastRun.YearDay() == now.YearDay() {
					continue
				}
				lastRun = now
				s.run(ctx)
			}
		}
	}()
}

func (s *Scheduler) run(ctx context.Context) {
	s.logger.Info("Triggering scheduled recurring expense generation")
	result, err := s.recurring.GenerateDueExpenses(ctx, systemUserID)
	if err != nil {
		s.logger.Error("Scheduled recurring generation failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled recurring generation completed", slog.Int("generated", len(result.Generated)))
}
