package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emostore/internal/domain/model"
)

// seedRecord stores a blob of the given size and its ledger row.
func seedRecord(t *testing.T, store *memStore, ledger *memLedger, id string,
	createdAt time.Time, size int,
) model.MediaRecord {
	t.Helper()

	path := fmt.Sprintf("seed/%s.bin", id)
	_, err := store.Write(context.Background(), path,
		strings.NewReader(strings.Repeat("x", size)), int64(size))
	require.NoError(t, err)

	record := model.MediaRecord{
		ID:                 id,
		SessionID:          "sess-1",
		UserID:             "user-1",
		AssessmentType:     model.AssessmentPHQ9,
		QuestionIdentifier: "q1",
		MediaType:          model.MediaImage,
		RelativePath:       path,
		SizeBytes:          int64(size),
		CapturedAt:         createdAt,
		CreatedAt:          createdAt,
	}
	ledger.put(record)

	return record
}

func TestSweepRetentionWindow(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	old := seedRecord(t, store, ledger, "old", now.Add(-31*24*time.Hour), 10)
	edge := seedRecord(t, store, ledger, "edge", now.Add(-29*24*time.Hour), 10)
	fresh := seedRecord(t, store, ledger, "fresh", now.Add(-24*time.Hour), 10)

	sweeper := NewSweeper(ledger, ledger, store, store, testPolicy())

	report, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.DeletedCount)
	assert.Equal(t, 1, report.AgeEvictions)
	assert.Equal(t, int64(10), report.FreedBytes)
	assert.Equal(t, 0, report.SkippedFailures)

	assert.False(t, store.has(old.RelativePath))
	assert.True(t, store.has(edge.RelativePath))
	assert.True(t, store.has(fresh.RelativePath))
	assert.Equal(t, 2, ledger.count())

	// A second sweep over the same state is a no-op.
	report, err = sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DeletedCount)
}

func TestSweepCapacityEvictsOldestFirst(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	oldest := seedRecord(t, store, ledger, "a", now.Add(-3*time.Hour), 400)
	middle := seedRecord(t, store, ledger, "b", now.Add(-2*time.Hour), 400)
	newest := seedRecord(t, store, ledger, "c", now.Add(-1*time.Hour), 400)

	policy := testPolicy()
	policy.Policy.CapacityCeilingBytes = 500

	sweeper := NewSweeper(ledger, ledger, store, store, policy)

	report, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SizeEvictions)
	assert.Equal(t, 0, report.AgeEvictions)
	assert.False(t, store.has(oldest.RelativePath))
	assert.False(t, store.has(middle.RelativePath))
	assert.True(t, store.has(newest.RelativePath))

	usage, err := store.UsageBytes(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, usage, int64(500))
}

func TestSweepSkipsFailedBlobDelete(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	stuck := seedRecord(t, store, ledger, "stuck", now.Add(-40*24*time.Hour), 10)
	gone := seedRecord(t, store, ledger, "gone", now.Add(-40*24*time.Hour), 10)
	store.failRemove[stuck.RelativePath] = true

	sweeper := NewSweeper(ledger, ledger, store, store, testPolicy())

	report, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err, "per-record failures must not abort the sweep")

	assert.Equal(t, 1, report.DeletedCount)
	assert.Equal(t, 1, report.SkippedFailures)
	assert.False(t, store.has(gone.RelativePath))

	// The failed record keeps its ledger row so the bytes stay accounted.
	_, err = ledger.GetByID(context.Background(), stuck.ID)
	assert.NoError(t, err)
}

func TestSweepKeepsRowWhenLedgerDeleteFails(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	record := seedRecord(t, store, ledger, "r1", now.Add(-40*24*time.Hour), 10)
	ledger.failRemoveIDs[record.ID] = true

	sweeper := NewSweeper(ledger, ledger, store, store, testPolicy())

	report, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 0, report.DeletedCount)
	assert.Equal(t, 1, report.SkippedFailures)
	assert.Equal(t, 1, ledger.count())
}

func TestSweepEmptyLedger(t *testing.T) {
	t.Parallel()

	sweeper := NewSweeper(newMemLedger(), newMemLedger(), newMemStore(), newMemStore(), testPolicy())

	report, err := sweeper.Sweep(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, report.DeletedCount)
}
