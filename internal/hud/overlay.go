package hud

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// barTweenSeconds is how long the devil bar takes to slide to a new value
const barTweenSeconds = 0.25

// Overlay is the on-screen HUD model: the devil's bar, the player's bar and
// the defeat banner. The renderer reads it once per frame; Update advances
// its animations.
type Overlay struct {
	target  float32
	shown   float32
	tween   *gween.Tween
	visible bool

	playerPct float32

	banner     string
	bannerLeft time.Duration
	bannerFor  time.Duration
}

// NewOverlay creates an overlay whose defeat banner stays up for bannerFor
func NewOverlay(bannerFor time.Duration) *Overlay {
	return &Overlay{
		target:    100,
		shown:     100,
		playerPct: 100,
		bannerFor: bannerFor,
	}
}

func (o *Overlay) SetHealthPercentage(pct float64) {
	p := float32(pct)
	if p == o.target {
		return
	}
	o.target = p
	if !o.visible {
		o.shown = p
		o.tween = nil
		return
	}
	o.tween = gween.New(o.shown, p, barTweenSeconds, ease.OutQuad)
}

// SetVisible shows or hides the devil bar. Showing it clears the defeat banner.
func (o *Overlay) SetVisible(visible bool) {
	if visible == o.visible {
		return
	}
	o.visible = visible
	if !visible {
		o.shown = o.target
		o.tween = nil
	} else {
		o.banner = ""
		o.bannerLeft = 0
	}
}

func (o *Overlay) NotifyEntityDefeated() {
	o.banner = DefeatMessage
	o.bannerLeft = o.bannerFor
}

// SetPlayerHealth updates the player's own bar
func (o *Overlay) SetPlayerHealth(health, maxHealth int) {
	o.playerPct = float32(HealthPercentage(health, maxHealth))
}

// Update advances the bar animation and the banner timer by dt seconds
func (o *Overlay) Update(dt float64) {
	if o.tween != nil {
		v, done := o.tween.Update(float32(dt))
		o.shown = v
		if done {
			o.shown = o.target
			o.tween = nil
		}
	}
	if o.bannerLeft > 0 {
		o.bannerLeft -= time.Duration(dt * float64(time.Second))
		if o.bannerLeft <= 0 {
			o.banner = ""
			o.bannerLeft = 0
		}
	}
}

// DevilBar returns the displayed fill in [0,100] and whether the bar is shown
func (o *Overlay) DevilBar() (pct float32, visible bool) {
	return o.shown, o.visible
}

// Target is the percentage the bar is moving toward
func (o *Overlay) Target() float32 {
	return o.target
}

func (o *Overlay) PlayerBar() float32 {
	return o.playerPct
}

// Banner returns the active notification text, if any
func (o *Overlay) Banner() (string, bool) {
	return o.banner, o.banner != ""
}
