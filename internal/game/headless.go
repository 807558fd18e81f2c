package game

import (
	"context"
	"time"

	"voxel-devil/internal/entity"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/player"
	"voxel-devil/internal/profiling"
	"voxel-devil/internal/stats"

	"go.uber.org/zap"
)

// Summary reports a headless run
type Summary struct {
	Ticks     int
	Simulated time.Duration
	Tallies   stats.Tallies
}

// Headless drives a Session without a window. Time comes from a manual clock
// advanced by a fixed step, so runs are reproducible.
type Headless struct {
	Session   *Session
	Clock     *entity.ManualClock
	Step      time.Duration
	Autopilot bool
	SlowFrame time.Duration
	Logger    *zap.Logger
}

// Run advances ticks steps, or until ctx is done when ticks is not positive.
func (h *Headless) Run(ctx context.Context, ticks int) (Summary, error) {
	log := logging.OrNop(h.Logger).Named("headless")
	sens := h.Session.cfg.Player.MouseSens
	dt := h.Step.Seconds()

	var sum Summary
	for ticks <= 0 || sum.Ticks < ticks {
		if err := ctx.Err(); err != nil {
			sum.Tallies = h.Session.Stats.Tallies()
			return sum, err
		}
		profiling.ResetFrame()
		start := time.Now()

		h.Clock.Advance(h.Step)
		var in player.Intent
		if h.Autopilot {
			var target entity.Entity
			if d := h.Session.Spawner.Current(); d != nil {
				target = d
			}
			in = Autopilot(h.Session.Player, target, sens)
		}
		h.Session.Update(dt, in)

		sum.Ticks++
		sum.Simulated += h.Step
		warnSlowFrame(log, time.Since(start), h.SlowFrame)
	}
	sum.Tallies = h.Session.Stats.Tallies()
	log.Info("headless run finished",
		zap.Int("ticks", sum.Ticks),
		zap.Duration("simulated", sum.Simulated),
		zap.Int("devils_slain", sum.Tallies.DevilsSlain),
		zap.Int("devils_spawned", sum.Tallies.DevilsSpawned),
		zap.Int("player_deaths", sum.Tallies.PlayerDeaths))
	return sum, nil
}

// warnSlowFrame logs frames slower than limit together with the slowest tracked sections
func warnSlowFrame(log *zap.Logger, took, limit time.Duration) {
	if limit <= 0 || took <= limit {
		return
	}
	log.Warn("slow frame", zap.Duration("took", took), zap.String("top", profiling.TopN(5)))
}
