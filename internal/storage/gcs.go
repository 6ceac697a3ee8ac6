package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStore writes objects to a Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	cleaned, err := cleanObjectName(name)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(cleaned).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload: %w", err)
	}

	return PublicURL(s.bucket, cleaned), nil
}

func (s *GCSStore) Delete(ctx context.Context, name string) error {
	cleaned, err := cleanObjectName(name)
	if err != nil {
		return err
	}

	err = s.client.Bucket(s.bucket).Object(cleaned).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, bucket, name)
}
