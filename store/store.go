package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/daystram/chessrules/board"
)

const (
	// DefaultSaveFile is resolved relative to the XDG data directory.
	DefaultSaveFile = "chessrules/save.json"

	// RecordVersion is the only Record layout Load accepts.
	RecordVersion = 1
)

var (
	ErrNoSave        = errors.New("no saved game")
	ErrInvalidRecord = errors.New("invalid saved game")
)

// Player is a named participant bound to a side.
type Player struct {
	Name string     `json:"name"`
	Side board.Side `json:"side"`
}

// Record is everything needed to resume a game.
type Record struct {
	Version int            `json:"version"`
	Board   board.Snapshot `json:"board"`
	Turn    board.Side     `json:"turn"`
	Players []Player       `json:"players"`
	SavedAt time.Time      `json:"saved_at"`
}

type Store struct {
	path string
}

// New returns a Store writing to path. An empty path selects DefaultSaveFile under the XDG data
// directory, creating its parent directories.
func New(path string) (*Store, error) {
	if path == "" {
		p, err := xdg.DataFile(DefaultSaveFile)
		if err != nil {
			return nil, fmt.Errorf("resolve save file: %w", err)
		}
		path = p
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Save writes r atomically, replacing any previous save. A record Load would reject is not
// written.
func (s *Store) Save(r Record) error {
	r.Version = RecordVersion
	if r.SavedAt.IsZero() {
		r.SavedAt = time.Now().UTC()
	}
	if err := r.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".save-*.json")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads the saved record. The board snapshot is validated, so a successful Load can always
// be restored.
func (s *Store) Load() (Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, fmt.Errorf("%w: %s", ErrNoSave, s.path)
	}
	if err != nil {
		return Record{}, err
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) Validate() error {
	if r.Version != RecordVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidRecord, r.Version)
	}
	if r.Turn != board.SideWhite && r.Turn != board.SideBlack {
		return fmt.Errorf("%w: unknown turn", ErrInvalidRecord)
	}
	if len(r.Players) != len(board.Sides) {
		return fmt.Errorf("%w: expected %d players", ErrInvalidRecord, len(board.Sides))
	}
	seen := make(map[board.Side]bool, len(r.Players))
	for _, p := range r.Players {
		if seen[p.Side] {
			return fmt.Errorf("%w: side %s taken twice", ErrInvalidRecord, p.Side)
		}
		seen[p.Side] = true
	}
	b, err := board.FromSnapshot(r.Board)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if _, checked := b.Check(r.Turn.Opposite()); checked {
		return fmt.Errorf("%w: %s is in check but not to move", ErrInvalidRecord, r.Turn.Opposite())
	}
	return nil
}
