package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"inventory-manager/core/storage"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned for names without a known definition extension.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// Format is the encoding of a definition document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromName detects the document format from a file or object name.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// Document is a raw extension definition.
type Document struct {
	// Name is the file path or object key the document was read from.
	Name string
	// Format is the detected encoding.
	Format Format
	// Data is the raw file content.
	Data []byte
}

// Source discovers extension definition documents.
type Source interface {
	// Discover returns every definition document, sorted by name.
	Discover(ctx context.Context) ([]Document, error)
}

// New builds the Source selected by cfg. The storage client is only required
// for the bucket kind.
func New(cfg Config, client storage.Client, bucket string, logger *zap.Logger) (Source, error) {
	switch cfg.Kind {
	case KindLocal, "":
		return NewLocalSource(afero.NewOsFs(), cfg.Dir, logger), nil
	case KindBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket source requires a storage client")
		}
		return NewBucketSource(client, bucket, cfg.Prefix, logger), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
