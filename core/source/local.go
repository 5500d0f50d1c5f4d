package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LocalSource reads definitions from a directory. Subdirectories are not scanned.
type LocalSource struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// NewLocalSource creates a source reading from dir on fs.
func NewLocalSource(fs afero.Fs, dir string, logger *zap.Logger) *LocalSource {
	return &LocalSource{fs: fs, dir: dir, logger: logger}
}

// Discover implements Source.
func (s *LocalSource) Discover(ctx context.Context) ([]Document, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension directory %s: %w", s.dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var docs []Document
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Mode().IsRegular() {
			continue
		}

		format, err := FormatFromName(entry.Name())
		if err != nil {
			continue
		}

		name := filepath.Join(s.dir, entry.Name())
		s.logger.Info("Located extension file", zap.String("path", name))

		data, err := afero.ReadFile(s.fs, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read extension file %s: %w", name, err)
		}

		docs = append(docs, Document{Name: name, Format: format, Data: data})
	}

	return docs, nil
}
