package estimator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/restevesd/arnes/internal/models"
	"gopkg.in/yaml.v3"
)

// FileSource loads YAML model artifacts from a directory
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource rooted at dir
func NewFileSource(dir string) *FileSource {
	if dir == "" {
		dir = "."
	}
	return &FileSource{dir: dir}
}

// Describe names the source for logs and the model info endpoint
func (s *FileSource) Describe() string {
	return "file:" + s.dir
}

// LoadModel reads and decodes the named artifact
func (s *FileSource) LoadModel(_ context.Context, name string) (*models.RegressionModel, error) {
	path := filepath.Join(s.dir, name)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Op: "estimator.load_file", Kind: KindNotFound, Resource: path, Err: err}
		}
		return nil, &Error{Op: "estimator.load_file", Kind: KindCorrupt, Resource: path, Err: err}
	}

	var m models.RegressionModel
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, &Error{Op: "estimator.load_file", Kind: KindCorrupt, Resource: path, Err: fmt.Errorf("failed to decode model: %w", err)}
	}

	return &m, nil
}
