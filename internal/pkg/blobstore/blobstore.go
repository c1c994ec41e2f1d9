// Package blobstore uploads note files to a Google Cloud Storage bucket
// and hands back public links.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/opennotes/backend/internal/pkg/logger"
)

// Uploader stores an object and returns a publicly readable URL for it.
// The interface keeps services testable with an in-memory fake.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
}

// GCSStore is the Cloud Storage backed Uploader.
type GCSStore struct {
	client  *storage.Client
	bucket  string
	timeout time.Duration
}

// NewGCSStore creates a GCSStore using the given service-account
// credentials file. A missing credentials file is a hard failure: blob
// operations cannot work without it.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string, timeout time.Duration) (*GCSStore, error) {
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, fmt.Errorf("blob storage credentials file %s: %w", credentialsFile, err)
	}

	client, err := storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	logger.Info().Str("bucket", bucket).Msg("Blob storage client initialized")
	return &GCSStore{
		client:  client,
		bucket:  bucket,
		timeout: timeout,
	}, nil
}

// Upload writes the object, grants AllUsers read access, and returns the
// public URL. The whole call is bounded by the configured timeout.
func (s *GCSStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	object := s.client.Bucket(s.bucket).Object(objectName)

	writer := object.NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()
		return "", fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", objectName, err)
	}

	if err := object.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("grant public read on %s: %w", objectName, err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName)
	logger.Info().Str("object", objectName).Str("url", url).Msg("Blob uploaded")
	return url, nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
