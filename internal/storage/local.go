package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes under Root and serves files at URLPrefix.
type LocalStore struct {
	Root      string
	URLPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, ReportsPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Root: root, URLPrefix: urlPrefix}, nil
}

func (s *LocalStore) Save(ctx context.Context, key, _ string, data []byte) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	k, err := cleanKey(key)
	if err != nil {
		return StoredFile{}, err
	}
	full := filepath.Join(s.Root, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("write %s: %w", k, err)
	}
	return StoredFile{Key: k, URL: path.Join(s.URLPrefix, k)}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.Root, filepath.FromSlash(k)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", k, err)
	}
	return nil
}
