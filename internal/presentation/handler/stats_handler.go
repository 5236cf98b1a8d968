package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/presentation"
)

type StatsHandler struct {
	stats abstraction.StatsReader
}

func NewStatsHandler(stats abstraction.StatsReader) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

// HandleStats handles GET /storage/stats requests. An optional user_id
// query parameter narrows the report to one user.
func (h *StatsHandler) HandleStats(c echo.Context) error {
	report, err := h.stats.StorageStats(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, report)
}
