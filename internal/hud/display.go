package hud

import (
	"voxel-devil/internal/logging"

	"go.uber.org/zap"
)

// DefeatMessage is shown once when a devil dies
const DefeatMessage = "Devil defeated!"

// Display shows the devil's health to the player
type Display interface {
	// SetHealthPercentage takes a value in [0,100]
	SetHealthPercentage(pct float64)
	SetVisible(visible bool)
	// NotifyEntityDefeated shows the one-shot defeat notification
	NotifyEntityDefeated()
}

// HealthPercentage maps health to [0,100]. A non-positive max yields 0.
func HealthPercentage(health, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}
	pct := float64(health) / float64(maxHealth) * 100
	return min(max(pct, 0), 100)
}

// LogDisplay writes display changes to a logger. Headless runs use it.
type LogDisplay struct {
	log     *zap.Logger
	pct     float64
	visible bool
	primed  bool
}

func NewLogDisplay(logger *zap.Logger) *LogDisplay {
	return &LogDisplay{log: logging.OrNop(logger).Named("hud")}
}

func (d *LogDisplay) SetHealthPercentage(pct float64) {
	if d.primed && pct == d.pct {
		return
	}
	d.primed = true
	d.pct = pct
	d.log.Debug("devil health", zap.Float64("percent", pct))
}

func (d *LogDisplay) SetVisible(visible bool) {
	if visible == d.visible {
		return
	}
	d.visible = visible
	d.log.Debug("devil health bar", zap.Bool("visible", visible))
}

func (d *LogDisplay) NotifyEntityDefeated() {
	d.log.Info(DefeatMessage)
}

// Multi fans display calls out to several displays
type Multi []Display

func (m Multi) SetHealthPercentage(pct float64) {
	for _, d := range m {
		d.SetHealthPercentage(pct)
	}
}

func (m Multi) SetVisible(visible bool) {
	for _, d := range m {
		d.SetVisible(visible)
	}
}

func (m Multi) NotifyEntityDefeated() {
	for _, d := range m {
		d.NotifyEntityDefeated()
	}
}
