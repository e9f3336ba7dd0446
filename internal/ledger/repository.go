package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

// ErrNotInitialized indicates no portfolio record has ever been created.
var ErrNotInitialized = errors.New("portfolio not initialized")

// Store defines persistent storage for the portfolio record.
type Store interface {
	Load(ctx context.Context) (domain.Portfolio, error)
	Save(ctx context.Context, p domain.Portfolio) error
}

// FileStore implements Store with a single JSON file. Writes go to a temp
// file first and replace the record with os.Rename, so a crash mid-write
// cannot leave a truncated record behind.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (domain.Portfolio, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Portfolio{}, ErrNotInitialized
		}
		return domain.Portfolio{}, fmt.Errorf("opening portfolio record: %w", err)
	}
	defer f.Close()

	var p domain.Portfolio
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return domain.Portfolio{}, fmt.Errorf("decoding portfolio record: %w", err)
	}
	return p, nil
}

func (s *FileStore) Save(_ context.Context, p domain.Portfolio) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp record: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(p); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding portfolio record: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp record: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing portfolio record: %w", err)
	}
	return nil
}
