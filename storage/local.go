package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LocalStore keeps images in a single directory on disk. In ephemeral
// mode (temp-dir deployments) images are served back through the API;
// otherwise they are reachable as static assets.
type LocalStore struct {
	baseDir      string
	servedViaAPI bool
	logger       zerolog.Logger
}

func NewLocalStore(baseDir string, servedViaAPI bool) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{
		baseDir:      baseDir,
		servedViaAPI: servedViaAPI,
		logger:       log.With().Str("component", "localStore").Str("baseDir", baseDir).Logger(),
	}, nil
}

func (s *LocalStore) Store(ctx context.Context, contents io.Reader, originalName string) (string, error) {
	filename := NewFilename(originalName)
	path := filepath.Join(s.baseDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, contents); err != nil {
		f.Close()
		// Don't leave a truncated file behind.
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("filename", filename).Msg("failed to remove partial file")
		}
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *LocalStore) Retrieve(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, filepath.Base(filename)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return f, ContentTypeFor(filename), nil
}

func (s *LocalStore) Delete(ctx context.Context, filenameOrPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(filenameOrPath)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) PublicURL(filename string) string {
	if s.servedViaAPI {
		return "/api/images/" + filename
	}
	return "/assets/projects/" + filename
}
