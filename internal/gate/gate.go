// internal/gate/gate.go
package gate

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrLimitReached - на сегодня игр не осталось.
var ErrLimitReached = errors.New("daily game limit reached")

const dateLayout = "2006-01-02"

// Record - счётчик игр за один день.
type Record struct {
	Date        string `json:"date"`
	GamesPlayed int    `json:"gamesPlayed"`
}

// Store хранит запись между запусками.
type Store interface {
	Load() (Record, error)
	Save(Record) error
}

// Manager ограничивает число игр в день. День - локальная календарная дата.
type Manager struct {
	store  Store
	limit  int
	now    func() time.Time
	cached *Record // последняя прочитанная или сохранённая запись
}

func NewManager(store Store, limit int) *Manager {
	return &Manager{store: store, limit: limit, now: time.Now}
}

// SetClock подменяет часы, для тестов.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// today возвращает запись за сегодня. Запись за другой день считается пустой.
// Хранилище читается, только пока в памяти нет записи за сегодня.
func (m *Manager) today() Record {
	key := m.now().Format(dateLayout)
	if m.cached != nil && m.cached.Date == key {
		return *m.cached
	}
	rec, err := m.store.Load()
	if err != nil {
		log.Printf("Gate: failed to load daily record: %v", err)
		rec = Record{}
	}
	if rec.Date != key {
		rec = Record{Date: key}
	}
	m.cached = &rec
	return rec
}

// CanPlayGame сообщает, осталась ли сегодня хоть одна игра.
func (m *Manager) CanPlayGame() bool {
	return m.GamesRemainingToday() > 0
}

// GamesRemainingToday - сколько игр ещё можно начать сегодня.
func (m *Manager) GamesRemainingToday() int {
	return max(0, m.limit-m.today().GamesPlayed)
}

// RecordGamePlayed засчитывает одну игру за сегодня.
func (m *Manager) RecordGamePlayed() error {
	rec := m.today()
	rec.GamesPlayed++
	if err := m.store.Save(rec); err != nil {
		return fmt.Errorf("failed to save daily record: %w", err)
	}
	m.cached = &rec
	return nil
}

// Begin проверяет лимит и сразу засчитывает игру.
func (m *Manager) Begin() error {
	if !m.CanPlayGame() {
		log.Printf("Gate: daily limit of %d games reached", m.limit)
		return ErrLimitReached
	}
	return m.RecordGamePlayed()
}

// TimeUntilReset - время до локальной полуночи.
func (m *Manager) TimeUntilReset() time.Duration {
	now := m.now()
	y, mo, d := now.Date()
	midnight := time.Date(y, mo, d+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}

func (m *Manager) Limit() int { return m.limit }
