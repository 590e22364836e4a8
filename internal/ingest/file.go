package ingest

import (
	"context"
	"fmt"
	"os"

	"fixtures-service/internal/domain"
)

// FileSource reads a season CSV from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource constructs a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchMatches decodes the file into raw match records.
func (s *FileSource) FetchMatches(ctx context.Context) ([]domain.RawMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, NewInputError("file", fmt.Errorf("no path configured"))
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, NewInputError("file", err)
	}
	defer f.Close()

	matches, err := DecodeCSV(f)
	if err != nil {
		return nil, NewInputError("file", err)
	}
	return matches, nil
}
