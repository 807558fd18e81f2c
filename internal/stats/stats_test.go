package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[key] = data
	return nil
}

func TestTrackerCountsAndPersists(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store, nil)

	tr.Spawned(nil)
	tr.Defeated(nil)
	tr.Spawned(nil)
	tr.PlayerDied()
	require.NoError(t, tr.Save())

	reopened := NewTracker(store, nil)
	assert.Equal(t, Tallies{DevilsSlain: 1, DevilsSpawned: 2, PlayerDeaths: 1}, reopened.Tallies())
	assert.JSONEq(t, `{"devils_slain":1,"devils_spawned":2,"player_deaths":1}`, string(store.items[itemKey]))
}

func TestTrackerSkipsCleanSave(t *testing.T) {
	store := newMemStore()
	tr := NewTracker(store, nil)
	require.NoError(t, tr.Save())
	assert.Equal(t, 0, store.saves)

	tr.Defeated(nil)
	require.NoError(t, tr.Save())
	require.NoError(t, tr.Save())
	assert.Equal(t, 1, store.saves)
}

func TestTrackerCorruptDataStartsFresh(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := newMemStore()
	store.items[itemKey] = []byte("{not json")

	tr := NewTracker(store, zap.New(core))
	assert.Equal(t, Tallies{}, tr.Tallies())
	assert.Equal(t, 1, logs.FilterMessage("could not load stats, starting fresh").Len())
}

func TestTrackerSaveError(t *testing.T) {
	boom := errors.New("disk full")
	store := newMemStore()
	store.saveErr = boom
	tr := NewTracker(store, nil)
	tr.PlayerDied()

	err := tr.Save()
	require.ErrorIs(t, err, boom)

	store.saveErr = nil
	require.NoError(t, tr.Save(), "still dirty after a failed save")
	assert.Equal(t, 1, store.saves)
}

func TestTrackerWithoutStore(t *testing.T) {
	tr := NewTracker(nil, nil)
	tr.Defeated(nil)
	assert.NoError(t, tr.Save())
	assert.Equal(t, 1, tr.Tallies().DevilsSlain)
}
