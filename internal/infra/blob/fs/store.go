package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store keeps images under root and serves them below urlPrefix.
type Store struct {
	root      string
	urlPrefix string
}

func New(root, urlPrefix string) (*Store, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *Store) Root() string { return s.root }

// sanitizeKey ensures key doesn't escape root.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key contains '..'")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid absolute key")
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}

// Save writes through a temp file and renames it into place so that a
// partially written image is never visible.
func (s *Store) Save(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	dataPath := filepath.Join(s.root, k)
	if _, err := os.Stat(dataPath); err == nil {
		return "", fmt.Errorf("image %s already exists", key)
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dataPath), ".tmp-*")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dataPath); err != nil {
		return "", err
	}

	return s.urlFor(k), nil
}

// Remove ignores URLs this store did not hand out and files already gone.
func (s *Store) Remove(_ context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		return nil
	}
	k, err := sanitizeKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, k)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) urlFor(key string) string {
	return path.Join("/", s.urlPrefix, key)
}

func (s *Store) keyFor(url string) (string, bool) {
	prefix := path.Join("/", s.urlPrefix) + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
