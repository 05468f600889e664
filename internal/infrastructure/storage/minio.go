package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/meetwise-team/meeting-pipeline/pkg/config"
)

// TranscriptArchive stores raw transcript payloads in object storage so the
// service keeps its own copy after the provider-hosted URL expires.
type TranscriptArchive struct {
	client *minio.Client
	bucket string
}

// NewTranscriptArchive creates a MinIO-backed archive
func NewTranscriptArchive(cfg *config.StorageConfig) (*TranscriptArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &TranscriptArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

// ensureBucket creates the archive bucket when missing
func (a *TranscriptArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Store writes one meeting's raw transcript and returns the object name
func (a *TranscriptArchive) Store(ctx context.Context, meetingID string, data []byte) (string, error) {
	objectName := fmt.Sprintf("transcripts/%s/%d.jsonl", meetingID, time.Now().Unix())

	_, err := a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/x-ndjson",
	})
	if err != nil {
		return "", fmt.Errorf("failed to store transcript: %w", err)
	}

	return objectName, nil
}
