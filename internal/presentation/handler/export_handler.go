package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/presentation"
	"emostore/pkg/logger"
)

type ExportHandler struct {
	exporter abstraction.Exporter
}

func NewExportHandler(exporter abstraction.Exporter) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// HandleExport handles GET /sessions/:sessionId/export requests. The zip
// archive is streamed straight into the response body, so a failure past
// the first entry surfaces as a truncated archive rather than an error
// status.
func (h *ExportHandler) HandleExport(c echo.Context) error {
	sessionID := c.Param(presentation.SessionParam)
	if sessionID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing session id")

		return c.NoContent(http.StatusBadRequest)
	}

	filename := fmt.Sprintf("session_%s_%s.zip", sessionID, time.Now().UTC().Format("20060102T150405"))

	c.Response().Header().Set(presentation.TypeKey, "application/zip")
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := h.exporter.ExportSession(c.Request().Context(), sessionID, c.Response()); err != nil {
		logger.Error("session export failed mid-stream", "session", sessionID, "err", err.Error())

		return err
	}

	return nil
}
