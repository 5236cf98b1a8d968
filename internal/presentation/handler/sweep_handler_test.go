package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emostore/internal/domain/dto"
)

type sweeperStub struct {
	report dto.SweepReport
	err    error
}

func (s sweeperStub) Sweep(context.Context, time.Time) (dto.SweepReport, error) {
	return s.report, s.err
}

type reconcilerStub struct {
	report dto.ReconcileReport
	err    error
}

func (r reconcilerStub) Reconcile(context.Context, time.Time) (dto.ReconcileReport, error) {
	return r.report, r.err
}

func TestHandleSweepReturnsReport(t *testing.T) {
	t.Parallel()

	stub := sweeperStub{report: dto.SweepReport{DeletedCount: 3, FreedBytes: 4096, AgeEvictions: 3}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/storage/sweep", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewSweepHandler(stub, reconcilerStub{}).HandleSweep(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var report dto.SweepReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 3, report.DeletedCount)
	assert.Equal(t, int64(4096), report.FreedBytes)
}

func TestHandleReconcileReturnsReport(t *testing.T) {
	t.Parallel()

	stub := reconcilerStub{report: dto.ReconcileReport{ScannedBlobs: 10, OrphansFound: 2, OrphansDeleted: 1}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/storage/reconcile", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewSweepHandler(sweeperStub{}, stub).HandleReconcile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var report dto.ReconcileReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.OrphansFound)
}
