package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /files/:id requests, streaming the stored blob
// with its recorded MIME type.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing file id")

		return c.NoContent(http.StatusBadRequest)
	}

	record, rc, err := h.getter.OpenMedia(c.Request().Context(), id)
	if err != nil {
		// Only a missing record or blob is a 404; a store fault is a
		// retryable server-side condition.
		return captureError(c, err)
	}
	defer rc.Close()

	c.Response().Header().Set("Accept-Ranges", "bytes")

	return c.Stream(http.StatusOK, record.MimeType, rc)
}
