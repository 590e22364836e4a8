package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"fixtures-service/internal/domain"
)

// Store defines how published snapshots are read back.
type Store interface {
	LoadGameweek(week int) (domain.GameweekResponse, error)
	LoadCurrent() (domain.GameweekResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadGameweek reads a published gameweek file from disk.
func (s *FSStore) LoadGameweek(week int) (domain.GameweekResponse, error) {
	if s == nil {
		return domain.GameweekResponse{}, errors.New("snapshot store not configured")
	}
	return s.decodeFile(GameweekPath(s.basePath, week))
}

// LoadCurrent reads the published current-gameweek file from disk.
func (s *FSStore) LoadCurrent() (domain.GameweekResponse, error) {
	if s == nil {
		return domain.GameweekResponse{}, errors.New("snapshot store not configured")
	}
	return s.decodeFile(CurrentPath(s.basePath))
}

func (s *FSStore) decodeFile(path string) (domain.GameweekResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.GameweekResponse{}, err
	}
	defer f.Close()

	var payload domain.GameweekResponse
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.GameweekResponse{}, err
	}
	return payload, nil
}
