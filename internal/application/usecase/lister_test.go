package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emostore/internal/domain/model"
)

func TestSessionFilesOrderedByCaptureTime(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	seedRecord(t, store, ledger, "second", base.Add(time.Minute), 10)
	seedRecord(t, store, ledger, "first", base, 10)

	lister := NewLister(ledger)

	files, err := lister.SessionFiles(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "first", files[0].ID)
	assert.Equal(t, "second", files[1].ID)
	assert.Equal(t, base.UnixMilli(), files[0].CapturedAt)
}

func TestUserFilesNewestFirst(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	ledger := newMemLedger()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	seedRecord(t, store, ledger, "older", base, 10)
	seedRecord(t, store, ledger, "newer", base.Add(time.Hour), 10)

	lister := NewLister(ledger)

	files, err := lister.UserFiles(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "newer", files[0].ID)
	assert.Equal(t, "older", files[1].ID)
}

func TestListingsRejectBadIdentifiers(t *testing.T) {
	t.Parallel()

	lister := NewLister(newMemLedger())

	_, err := lister.SessionFiles(context.Background(), "../etc")
	assert.ErrorIs(t, err, model.ErrInvalidCapture)

	_, err = lister.UserFiles(context.Background(), "a/b")
	assert.ErrorIs(t, err, model.ErrInvalidCapture)
}

func TestListingsEmptyResult(t *testing.T) {
	t.Parallel()

	lister := NewLister(newMemLedger())

	files, err := lister.SessionFiles(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.NotNil(t, files, "listings serialize as [] not null")
}
