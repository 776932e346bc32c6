package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jshelley/wxmarket-data/internal/record"
)

// Journal is the append-only observation log backed by one JSON file.
type Journal struct {
	path string
}

// New creates a Journal at the given path. The file is created on the
// first append; a missing file reads as an empty log.
func New(path string) *Journal {
	return &Journal{path: path}
}

// Path returns the journal's file path.
func (j *Journal) Path() string {
	return j.path
}

// ReadAll returns every logged observation in insertion order. A
// missing file yields an empty log, not an error.
func (j *Journal) ReadAll() ([]record.Observation, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var records []record.Observation
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse journal: %w", err)
	}

	return records, nil
}

// Append adds one observation to the end of the log and rewrites the
// file. Records are never mutated or reordered once written.
func (j *Journal) Append(obs record.Observation) error {
	records, err := j.ReadAll()
	if err != nil {
		return err
	}

	records = append(records, obs)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	if err := os.WriteFile(j.path, data, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}

	return nil
}

// Len returns the number of logged observations.
func (j *Journal) Len() (int, error) {
	records, err := j.ReadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
