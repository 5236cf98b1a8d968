package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleSessionFiles handles GET /sessions/:sessionId/files requests.
func (h *ListHandler) HandleSessionFiles(c echo.Context) error {
	sessionID := c.Param(presentation.SessionParam)
	if sessionID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing session id")

		return c.NoContent(http.StatusBadRequest)
	}

	files, err := h.lister.SessionFiles(c.Request().Context(), sessionID)
	if err != nil {
		return captureError(c, err)
	}

	return c.JSON(http.StatusOK, files)
}

// HandleUserFiles handles GET /users/:userId/files requests.
func (h *ListHandler) HandleUserFiles(c echo.Context) error {
	userID := c.Param(presentation.UserParam)
	if userID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing user id")

		return c.NoContent(http.StatusBadRequest)
	}

	files, err := h.lister.UserFiles(c.Request().Context(), userID)
	if err != nil {
		return captureError(c, err)
	}

	return c.JSON(http.StatusOK, files)
}
