package storage

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore keeps uploads in a Cloud Storage bucket. Credentials come from
// the environment (ADC) unless options say otherwise.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Save(ctx context.Context, key, contentType string, data []byte) (StoredFile, error) {
	k, err := cleanKey(key)
	if err != nil {
		return StoredFile{}, err
	}
	w := s.client.Bucket(s.bucket).Object(k).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return StoredFile{}, fmt.Errorf("gcs write %s: %w", k, err)
	}
	if err := w.Close(); err != nil {
		return StoredFile{}, fmt.Errorf("gcs close %s: %w", k, err)
	}
	return StoredFile{Key: k, URL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, k)}, nil
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	err = s.client.Bucket(s.bucket).Object(k).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %s: %w", k, err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
