package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
)

// memStore is an in-memory blob store with injectable faults.
type memStore struct {
	mu          sync.Mutex
	blobs       map[string][]byte
	modTimes    map[string]time.Time
	failWrite   bool
	failRemove  map[string]bool
	removeCalls []string
}

func newMemStore() *memStore {
	return &memStore{
		blobs:      make(map[string][]byte),
		modTimes:   make(map[string]time.Time),
		failRemove: make(map[string]bool),
	}
}

func (m *memStore) Write(_ context.Context, relativePath string, body io.Reader,
	maxSizeBytes int64,
) (entity.BlobWriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: injected", model.ErrStorageWriteFailed)
	}

	data, err := io.ReadAll(io.LimitReader(body, maxSizeBytes+1))
	if err != nil {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}
	if int64(len(data)) > maxSizeBytes {
		return entity.BlobWriteResult{}, fmt.Errorf("%w: over %d bytes", model.ErrSizeExceeded, maxSizeBytes)
	}

	m.blobs[relativePath] = data
	m.modTimes[relativePath] = time.Now()

	return entity.BlobWriteResult{RelativePath: relativePath, SizeBytes: int64(len(data))}, nil
}

func (m *memStore) Open(_ context.Context, relativePath string) (io.ReadCloser, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[relativePath]
	if !ok {
		return nil, 0, fmt.Errorf("%w: blob %s", model.ErrNotFound, relativePath)
	}

	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

func (m *memStore) Remove(_ context.Context, relativePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeCalls = append(m.removeCalls, relativePath)

	if m.failRemove[relativePath] {
		return fmt.Errorf("%w: injected", model.ErrStorageWriteFailed)
	}

	delete(m.blobs, relativePath)
	delete(m.modTimes, relativePath)

	return nil
}

func (m *memStore) UsageBytes(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int64
	for _, data := range m.blobs {
		total += int64(len(data))
	}

	return total, nil
}

func (m *memStore) Walk(_ context.Context, fn func(blob.ObjectInfo) error) error {
	m.mu.Lock()
	paths := make([]string, 0, len(m.blobs))
	for p := range m.blobs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	infos := make([]blob.ObjectInfo, 0, len(paths))
	for _, p := range paths {
		infos = append(infos, blob.ObjectInfo{
			RelativePath: p,
			SizeBytes:    int64(len(m.blobs[p])),
			ModifiedAt:   m.modTimes[p],
		})
	}
	m.mu.Unlock()

	for _, info := range infos {
		if err := fn(info); err != nil {
			return err
		}
	}

	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.blobs)
}

func (m *memStore) has(relativePath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.blobs[relativePath]

	return ok
}

// memLedger is an in-memory metadata ledger with injectable faults.
type memLedger struct {
	mu            sync.Mutex
	records       map[string]model.MediaRecord
	failCreate    bool
	failRemoveIDs map[string]bool
}

func newMemLedger() *memLedger {
	return &memLedger{
		records:       make(map[string]model.MediaRecord),
		failRemoveIDs: make(map[string]bool),
	}
}

func (l *memLedger) Create(_ context.Context, record *model.MediaRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failCreate {
		return fmt.Errorf("%w: injected", model.ErrLedgerWriteFailed)
	}

	for _, existing := range l.records {
		if existing.RelativePath == record.RelativePath {
			return fmt.Errorf("%w: duplicate path", model.ErrLedgerWriteFailed)
		}
	}

	l.records[record.ID] = *record

	return nil
}

func (l *memLedger) GetByID(_ context.Context, id string) (*model.MediaRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: record %s", model.ErrNotFound, id)
	}

	return &record, nil
}

func (l *memLedger) ExistsPath(_ context.Context, relativePath string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, record := range l.records {
		if record.RelativePath == relativePath {
			return true, nil
		}
	}

	return false, nil
}

func (l *memLedger) ListBySession(_ context.Context, sessionID string) ([]model.MediaRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.MediaRecord
	for _, record := range l.records {
		if record.SessionID == sessionID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.Before(out[j].CapturedAt) })

	return out, nil
}

func (l *memLedger) ListByUser(_ context.Context, userID string) ([]model.MediaRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.MediaRecord
	for _, record := range l.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.After(out[j].CapturedAt) })

	return out, nil
}

func (l *memLedger) ListOlderThan(_ context.Context, cutoff time.Time, limit int64) ([]model.MediaRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.MediaRecord
	for _, record := range l.records {
		if record.CreatedAt.Before(cutoff) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	if int64(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (l *memLedger) ListOldestFirst(_ context.Context, limit int64) ([]model.MediaRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.MediaRecord, 0, len(l.records))
	for _, record := range l.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	if int64(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (l *memLedger) RemoveByID(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failRemoveIDs[id] {
		return fmt.Errorf("%w: injected", model.ErrLedgerWriteFailed)
	}

	delete(l.records, id)

	return nil
}

func (l *memLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.records)
}

func (l *memLedger) put(record model.MediaRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[record.ID] = record
}

// memResponses serves canned assessment answers for export tests.
type memResponses struct {
	phq9 []model.PHQ9Response
	open []model.OpenQuestionResponse
	err  error
}

func (r *memResponses) PHQ9BySession(context.Context, string) ([]model.PHQ9Response, error) {
	return r.phq9, r.err
}

func (r *memResponses) OpenQuestionsBySession(context.Context, string) ([]model.OpenQuestionResponse, error) {
	return r.open, r.err
}

// memPublisher records published messages, optionally failing.
type memPublisher struct {
	mu       sync.Mutex
	messages []string
	fail     bool
}

func (p *memPublisher) Publish(_ context.Context, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return errors.New("broker down")
	}

	p.messages = append(p.messages, message)

	return nil
}
