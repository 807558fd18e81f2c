package stats

import (
	"encoding/json"
	"fmt"

	"voxel-devil/internal/entity"
	"voxel-devil/internal/logging"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const itemKey = "stats"

// Store is the slice of *gdata.Manager the tracker needs
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Tallies are the persisted counters
type Tallies struct {
	DevilsSlain   int `json:"devils_slain"`
	DevilsSpawned int `json:"devils_spawned"`
	PlayerDeaths  int `json:"player_deaths"`
}

// Open opens the per-user data directory for appName
func Open(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open stats storage: %w", err)
	}
	return m, nil
}

// Tracker counts devil and player events and persists them to a Store.
// A nil store keeps the counts in memory only.
type Tracker struct {
	store   Store
	log     *zap.Logger
	tallies Tallies
	dirty   bool
}

// NewTracker loads any saved tallies from store. Unreadable data is logged
// and the tracker starts from zero.
func NewTracker(store Store, logger *zap.Logger) *Tracker {
	t := &Tracker{store: store, log: logging.OrNop(logger).Named("stats")}
	if err := t.load(); err != nil {
		t.log.Warn("could not load stats, starting fresh", zap.Error(err))
		t.tallies = Tallies{}
	}
	return t
}

func (t *Tracker) load() error {
	if t.store == nil {
		return nil
	}
	data, err := t.store.LoadItem(itemKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", itemKey, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, &t.tallies); err != nil {
		return fmt.Errorf("decode %s: %w", itemKey, err)
	}
	return nil
}

// Save writes the tallies when they changed since the last save
func (t *Tracker) Save() error {
	if t.store == nil || !t.dirty {
		return nil
	}
	data, err := json.Marshal(t.tallies)
	if err != nil {
		return fmt.Errorf("encode %s: %w", itemKey, err)
	}
	if err := t.store.SaveItem(itemKey, data); err != nil {
		t.log.Warn("could not save stats", zap.Error(err))
		return fmt.Errorf("save %s: %w", itemKey, err)
	}
	t.dirty = false
	return nil
}

// Tallies returns a copy of the counters
func (t *Tracker) Tallies() Tallies {
	return t.tallies
}

func (t *Tracker) HealthChanged(*entity.Devil, int, int) {}

func (t *Tracker) Attacked(*entity.Devil, int) {}

func (t *Tracker) Defeated(*entity.Devil) {
	t.tallies.DevilsSlain++
	t.dirty = true
}

func (t *Tracker) Spawned(*entity.Devil) {
	t.tallies.DevilsSpawned++
	t.dirty = true
}

// PlayerDied records a player death
func (t *Tracker) PlayerDied() {
	t.tallies.PlayerDeaths++
	t.dirty = true
}
