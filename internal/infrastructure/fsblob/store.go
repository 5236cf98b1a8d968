package fsblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
)

// tempPrefix marks in-flight writes. Temp files are invisible to reads,
// usage accounting and reconciliation walks.
const tempPrefix = ".tmp-"

// Store keeps blobs on a local content root. Writes go to a temp file in
// the destination directory and are renamed into place, so a reader never
// observes a partial object. Usage accounting is a counter adjusted on
// every write and delete and re-walked at most once per refresh interval.
type Store struct {
	root    string
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
	if cfg.Root == "" {
		return nil, errors.New("fsblob: empty content root")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("fsblob: create content root: %w", err)
	}

	refresh := time.Duration(cfg.UsageRefreshInSeconds) * time.Second
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}

	return &Store{root: cfg.Root, refresh: refresh}, nil
}

// resolve maps a relative path onto the content root, rejecting anything
// that would escape it.
func (s *Store) resolve(relativePath string) (string, error) {
	if relativePath == "" || filepath.IsAbs(relativePath) {
		return "", fmt.Errorf("%w: bad blob path %q", model.ErrInvalidCapture, relativePath)
	}

	clean := filepath.Clean(filepath.FromSlash(relativePath))
	if clean == "." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", fmt.Errorf("%w: bad blob path %q", model.ErrInvalidCapture, relativePath)
	}

	return filepath.Join(s.root, clean), nil
}

func (s *Store) Write(ctx context.Context, relativePath string, body io.Reader,
	maxSizeBytes int64,
) (entity.BlobWriteResult, error) {
	target, err := s.resolve(relativePath)
	if err != nil {
		return entity.BlobWriteResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	tmp, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	written, err := io.Copy(tmp, io.LimitReader(body, maxSizeBytes+1))
	if err != nil {
		s.discardTemp(tmp)

		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	if written > maxSizeBytes {
		s.discardTemp(tmp)

		return entity.BlobWriteResult{}, fmt.Errorf("%w: payload over %d bytes", model.ErrSizeExceeded, maxSizeBytes)
	}

	if err := tmp.Sync(); err != nil {
		s.discardTemp(tmp)

		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())

		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	s.adjustUsage(written)

	return entity.BlobWriteResult{RelativePath: relativePath, SizeBytes: written}, nil
}

func (s *Store) discardTemp(tmp *os.File) {
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
}

func (s *Store) Open(_ context.Context, relativePath string) (io.ReadCloser, int64, error) {
	target, err := s.resolve(relativePath)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: blob %s", model.ErrNotFound, relativePath)
		}

		return nil, 0, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, 0, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	return f, info.Size(), nil
}

// Remove deletes the blob at the path and prunes directories it leaves
// empty. Removing an absent path is not an error.
func (s *Store) Remove(_ context.Context, relativePath string) error {
	target, err := s.resolve(relativePath)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}

	s.adjustUsage(-info.Size())
	s.pruneEmptyDirs(filepath.Dir(target))

	return nil
}

// pruneEmptyDirs removes now-empty parents up to (but excluding) the root.
func (s *Store) pruneEmptyDirs(dir string) {
	for dir != s.root && strings.HasPrefix(dir, s.root) {
		if err := os.Remove(dir); err != nil {
			return // not empty, or already gone
		}
		dir = filepath.Dir(dir)
	}
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
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), tempPrefix) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}

		return fn(blob.ObjectInfo{
			RelativePath: filepath.ToSlash(rel),
			SizeBytes:    info.Size(),
			ModifiedAt:   info.ModTime(),
		})
	})
}
