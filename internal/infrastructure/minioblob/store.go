package minioblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
	"emostore/pkg/logger"
)

// Store keeps blobs in an S3-compatible bucket, object key = relative
// path. PutObject is already all-or-nothing, so the no-partial-object
// contract holds without a rename step.
type Store struct {
	client  *minio.Client
	bucket  string
	timeout time.Duration
	refresh time.Duration

	mu         sync.Mutex
	usageBytes int64
	walkedAt   time.Time
}

var (
	_ blob.Writer     = (*Store)(nil)
	_ blob.Reader     = (*Store)(nil)
	_ blob.Remover    = (*Store)(nil)
	_ blob.UsageMeter = (*Store)(nil)
	_ blob.Walker     = (*Store)(nil)
)

func New(cfg Config) (*Store, error) {
	logger.Info("connecting to object storage", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	refresh := time.Duration(cfg.UsageRefreshInSeconds) * time.Second
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		timeout: time.Duration(cfg.TimeoutInMs) * time.Millisecond,
		refresh: refresh,
	}, nil
}

// cappedReader fails the upload once more than max bytes have been read,
// which makes the SDK abort and leave no object behind.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

var errCapExceeded = errors.New("cap exceeded")

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		return 0, errCapExceeded
	}

	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		return n, errCapExceeded
	}

	return n, err
}

func (s *Store) Write(ctx context.Context, relativePath string, body io.Reader,
	maxSizeBytes int64,
) (entity.BlobWriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	capped := &cappedReader{r: body, remaining: maxSizeBytes}

	info, err := s.client.PutObject(ctx, s.bucket, relativePath, capped, -1, minio.PutObjectOptions{})
	if err != nil {
		if capped.remaining < 0 {
			return entity.BlobWriteResult{}, fmt.Errorf("%w: payload over %d bytes",
				model.ErrSizeExceeded, maxSizeBytes)
		}

		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	s.adjustUsage(info.Size)

	return entity.BlobWriteResult{RelativePath: relativePath, SizeBytes: info.Size}, nil
}

func (s *Store) Open(ctx context.Context, relativePath string) (io.ReadCloser, int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, relativePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, fmt.Errorf("%w: blob %s", model.ErrNotFound, relativePath)
		}

		return nil, 0, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	return obj, stat.Size, nil
}

func (s *Store) Remove(ctx context.Context, relativePath string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj, statErr := s.client.StatObject(ctx, s.bucket, relativePath, minio.StatObjectOptions{})

	err := s.client.RemoveObject(ctx, s.bucket, relativePath, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}

		return fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	if statErr == nil {
		s.adjustUsage(-obj.Size)
	}

	return nil
}

func (s *Store) UsageBytes(ctx context.Context) (int64, error) {
	s.mu.Lock()
	fresh := time.Since(s.walkedAt) < s.refresh
	cached := s.usageBytes
	s.mu.Unlock()

	if fresh {
		return cached, nil
	}

	var total int64
	err := s.Walk(ctx, func(info blob.ObjectInfo) error {
		total += info.SizeBytes

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.usageBytes = total
	s.walkedAt = time.Now()
	s.mu.Unlock()

	return total, nil
}

func (s *Store) adjustUsage(delta int64) {
	s.mu.Lock()
	if s.usageBytes += delta; s.usageBytes < 0 {
		s.usageBytes = 0
	}
	s.mu.Unlock()
}

func (s *Store) Walk(ctx context.Context, fn func(blob.ObjectInfo) error) error {
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, obj.Err.Error())
		}

		err := fn(blob.ObjectInfo{
			RelativePath: obj.Key,
			SizeBytes:    obj.Size,
			ModifiedAt:   obj.LastModified,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
