package jobs

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hackdeck/hackdeck/pkg/backend"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/stats"
)

func init() {
	Register("lifecycle-sweep", sweep{})
}

// sweep periodically applies every time-driven lifecycle move that has
// come due since the last run.
type sweep struct{}

// Spec implements Runner.
func (sweep) Spec(ctx context.Context) string {
	cfg := config.FromContext(ctx)
	if cfg == nil || cfg.Jobs.LifecycleSweep == "" {
		return "@every 1m"
	}
	return cfg.Jobs.LifecycleSweep
}

// Func implements Runner.
func (sweep) Func(ctx context.Context) func() {
	return func() {
		logger := log.FromContext(ctx).WithPrefix("jobs.sweep")
		b := backend.FromContext(ctx)
		if b == nil {
			logger.Error("no backend in context")
			return
		}

		moved, err := b.AdvanceByClock(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("lifecycle sweep failed", "err", err)
			return
		}

		stats.SweepMoves.Add(float64(moved))
	}
}
