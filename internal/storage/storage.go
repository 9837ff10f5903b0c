// Package storage persists uploaded report files.
package storage

import (
	"context"
	"errors"
	"path"
	"strings"
)

const ReportsPrefix = "reports"

var ErrInvalidKey = errors.New("storage: invalid object key")

type StoredFile struct {
	Key string
	URL string
}

// FileStore saves and removes objects by key. Delete of a missing object is
// not an error.
type FileStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (StoredFile, error)
	Delete(ctx context.Context, key string) error
}

// ReportKey places a generated file name under the reports prefix.
func ReportKey(name string) string {
	return path.Join(ReportsPrefix, name)
}

func cleanKey(key string) (string, error) {
	k := path.Clean(strings.TrimPrefix(key, "/"))
	if k == "." || k == "" || strings.HasPrefix(k, "../") || k == ".." {
		return "", ErrInvalidKey
	}
	return k, nil
}
