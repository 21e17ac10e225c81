package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const (
	baselineFile = "last_baseline.csv"
	actualsFile  = "last_actuals.csv"
)

// FileStore keeps the session cache as two flat CSV files in a directory.
// Writes go through a temp file and rename, so a crash never leaves a
// partially written cache behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) SaveBaseline(ctx context.Context, data []byte) error {
	return s.write(baselineFile, data)
}

func (s *FileStore) LoadBaseline(ctx context.Context) ([]byte, error) {
	return s.read(baselineFile, ErrNoBaseline)
}

func (s *FileStore) SaveActuals(ctx context.Context, data []byte) error {
	return s.write(actualsFile, data)
}

func (s *FileStore) LoadActuals(ctx context.Context) ([]byte, error) {
	return s.read(actualsFile, ErrNoActuals)
}

func (s *FileStore) Reset(ctx context.Context) error {
	for _, name := range []string{baselineFile, actualsFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	log.Info("Session cache cleared")
	return nil
}

func (s *FileStore) write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	log.Debugf("Stored %s (%d bytes)", name, len(data))
	return nil
}

func (s *FileStore) read(name string, missing error) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, missing
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
