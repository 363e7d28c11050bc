// internal/gate/store.go
package gate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// StorageKey - имя записи дневного счётчика.
const StorageKey = "bee-ware-daily-games"

// FileStore хранит запись в JSON-файле <dir>/bee-ware-daily-games.json.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// FilePath возвращает путь к файлу записи
func (s *FileStore) FilePath() string {
	return filepath.Join(s.basePath, StorageKey+".json")
}

// Load читает запись. Нет файла - пустая запись; битый файл тоже, с предупреждением.
func (s *FileStore) Load() (Record, error) {
	var rec Record

	data, err := os.ReadFile(s.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("failed to read %s: %w", s.FilePath(), err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Gate: corrupt record in %s, starting over: %v", s.FilePath(), err)
		return Record{}, nil
	}
	return rec, nil
}

// Save пишет запись на диск
func (s *FileStore) Save(rec Record) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.FilePath(), data, 0644)
}

// MemoryStore держит запись в памяти, для тестов и -dev без каталога.
type MemoryStore struct {
	rec Record
}

func (s *MemoryStore) Load() (Record, error) { return s.rec, nil }

func (s *MemoryStore) Save(rec Record) error {
	s.rec = rec
	return nil
}
