package gate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newManager(t *testing.T, store Store, limit int) (*Manager, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 3, 10, 22, 30, 0, 0, time.Local)}
	m := NewManager(store, limit)
	m.SetClock(c.now)
	return m, c
}

func TestManagerCountsGames(t *testing.T) {
	m, _ := newManager(t, &MemoryStore{}, 3)

	assert.Equal(t, 3, m.GamesRemainingToday())
	for i := 0; i < 3; i++ {
		require.True(t, m.CanPlayGame())
		require.NoError(t, m.RecordGamePlayed())
	}
	assert.False(t, m.CanPlayGame())
	assert.Zero(t, m.GamesRemainingToday())
}

func TestBeginRefusesAtLimit(t *testing.T) {
	m, _ := newManager(t, &MemoryStore{}, 1)

	require.NoError(t, m.Begin())
	err := m.Begin()
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.Zero(t, m.GamesRemainingToday())
}

func TestCounterResetsOnNewDay(t *testing.T) {
	store := &MemoryStore{}
	m, c := newManager(t, store, 2)
	require.NoError(t, m.Begin())
	require.NoError(t, m.Begin())
	require.False(t, m.CanPlayGame())

	c.t = c.t.Add(2 * time.Hour)
	assert.Equal(t, 2, m.GamesRemainingToday())
	require.NoError(t, m.Begin())

	rec, _ := store.Load()
	assert.Equal(t, "2024-03-11", rec.Date)
	assert.Equal(t, 1, rec.GamesPlayed)
}

func TestTimeUntilReset(t *testing.T) {
	m, _ := newManager(t, &MemoryStore{}, 3)
	assert.Equal(t, 90*time.Minute, m.TimeUntilReset())
}

type failingStore struct{}

func (failingStore) Load() (Record, error) { return Record{}, errors.New("disk on fire") }
func (failingStore) Save(Record) error     { return errors.New("disk on fire") }

func TestStoreErrors(t *testing.T) {
	m, _ := newManager(t, failingStore{}, 3)

	assert.Equal(t, 3, m.GamesRemainingToday(), "unreadable store counts as an empty day")
	err := m.RecordGamePlayed()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	store := NewFileStore(dir)

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{}, rec)

	m, _ := newManager(t, store, 3)
	require.NoError(t, m.Begin())

	data, err := os.ReadFile(filepath.Join(dir, "bee-ware-daily-games.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-10","gamesPlayed":1}`, string(data))

	m2, _ := newManager(t, NewFileStore(dir), 3)
	assert.Equal(t, 2, m2.GamesRemainingToday())
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(store.FilePath(), []byte("{not json"), 0644))

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{}, rec)

	m, _ := newManager(t, store, 3)
	assert.Equal(t, 3, m.GamesRemainingToday())
}

type countingStore struct {
	MemoryStore
	loads int
}

func (s *countingStore) Load() (Record, error) {
	s.loads++
	return s.MemoryStore.Load()
}

func TestManagerCachesTodayRecord(t *testing.T) {
	store := &countingStore{}
	m, c := newManager(t, store, 3)

	for i := 0; i < 10; i++ {
		m.GamesRemainingToday()
	}
	require.NoError(t, m.Begin())
	assert.Equal(t, 2, m.GamesRemainingToday())
	assert.Equal(t, 1, store.loads)

	c.t = c.t.Add(2 * time.Hour)
	assert.Equal(t, 3, m.GamesRemainingToday())
	assert.Equal(t, 2, store.loads, "new day reloads the store")
}
