package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/presentation"
)

// SweepHandler exposes the operator triggers for the retention sweep and
// the orphan reconciliation walk.
type SweepHandler struct {
	sweeper    abstraction.Sweeper
	reconciler abstraction.Reconciler
}

func NewSweepHandler(sweeper abstraction.Sweeper, reconciler abstraction.Reconciler) *SweepHandler {
	return &SweepHandler{
		sweeper:    sweeper,
		reconciler: reconciler,
	}
}

// HandleSweep handles POST /storage/sweep requests.
func (h *SweepHandler) HandleSweep(c echo.Context) error {
	report, err := h.sweeper.Sweep(c.Request().Context(), time.Now().UTC())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, report)
}

// HandleReconcile handles POST /storage/reconcile requests.
func (h *SweepHandler) HandleReconcile(c echo.Context) error {
	report, err := h.reconciler.Reconcile(c.Request().Context(), time.Now().UTC())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, report)
}
