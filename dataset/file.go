package dataset

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wayfarer/internal/ctxlog"
)

//go:embed data/roads.yaml data/game.yaml
var embedded embed.FS

// Roads returns the embedded Ethiopian road network.
func Roads() (*Dataset, error) { return loadEmbedded("data/roads.yaml") }

// Game returns the embedded adversarial travel game.
func Game() (*Dataset, error) { return loadEmbedded("data/game.yaml") }

func loadEmbedded(name string) (*Dataset, error) {
	src, err := embedded.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("dataset: embedded %s: %w", name, err)
	}

	return LoadYAML(bytes.NewReader(src))
}

// LoadFile reads a .yaml, .yml or .hcl table from path.
func LoadFile(ctx context.Context, path string) (*Dataset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading table", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var ds *Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		ds, err = LoadYAML(bytes.NewReader(src))
	case ".hcl":
		ds, err = LoadHCL(path, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Info("Loaded table", "name", ds.Name, "cities", ds.Graph.VertexCount(), "roads", ds.Graph.EdgeCount())

	return ds, nil
}
