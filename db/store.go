package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/furuilin66/guandan/models"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name already exists")
)

const dbFileName = "db.json"

// database is the persisted document: the whole thing is read in full and
// rewritten in full on every mutation.
type database struct {
	Teams   []models.Team  `json:"teams"`
	Matches []models.Match `json:"matches"`
}

func emptyDatabase() *database {
	return &database{
		Teams:   []models.Team{},
		Matches: []models.Match{},
	}
}

// Store owns the on-disk tournament state. Mutating operations serialize on
// an internal mutex around the read-modify-write cycle; read-only operations
// take no lock and rely on the atomic file replace for a consistent snapshot.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store rooted at dataDir, creating the directory if needed.
// The database file itself is created lazily on the first write; a missing
// file reads as an empty database.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dataDir, err)
	}
	return &Store{path: filepath.Join(dataDir, dbFileName)}, nil
}

// Path returns the canonical database file path.
func (s *Store) Path() string {
	return s.path
}

// load reads and decodes the full database document. A missing file is an
// empty database; any other read or decode failure is propagated so that a
// storage fault is never silently reported as "no teams yet".
func (s *Store) load() (*database, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyDatabase(), nil
		}
		return nil, fmt.Errorf("read database file: %w", err)
	}

	var data database
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode database file: %w", err)
	}
	if data.Teams == nil {
		data.Teams = []models.Team{}
	}
	if data.Matches == nil {
		data.Matches = []models.Match{}
	}
	return &data, nil
}

// save writes the document to a temporary file and renames it over the
// canonical path, so the canonical file is never left partially written. On
// failure the orphaned temp file is removed best-effort and the error is
// returned to the caller.
func (s *Store) save(data *database) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write database file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace database file: %w", err)
	}
	return nil
}

// Reset atomically replaces the persisted document with two empty
// collections.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(emptyDatabase())
}
