package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"emostore/internal/application/usecase"
	"emostore/internal/application/usecase/abstraction"
	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
	"emostore/internal/presentation"
	"emostore/pkg/logger"
)

type CaptureHandler struct {
	capturer abstraction.Capturer
}

func NewCaptureHandler(capturer abstraction.Capturer) *CaptureHandler {
	return &CaptureHandler{
		capturer: capturer,
	}
}

// HandleCapture handles POST /captures multipart requests.
func (h *CaptureHandler) HandleCapture(c echo.Context) error {
	req, fh, err := parseCaptureForm(c)
	if err != nil {
		return captureError(c, err)
	}

	src, err := fh.Open()
	if err != nil {
		return captureError(c, model.ErrStorageWriteFailed)
	}
	defer src.Close()

	req.Body = src
	req.OriginalFilename = fh.Filename

	record, err := h.capturer.Capture(c.Request().Context(), *req)
	if err != nil {
		logger.Error("capture failed", "session", req.SessionID, "err", err.Error())

		return captureError(c, err)
	}

	return c.JSON(http.StatusCreated, usecase.Describe(record))
}

func parseCaptureForm(c echo.Context) (*entity.CaptureRequest, *multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, invalidCapture("missing file part")
	}

	req := &entity.CaptureRequest{
		SessionID:          c.FormValue("session_id"),
		UserID:             c.FormValue("user_id"),
		AssessmentType:     c.FormValue("assessment_type"),
		QuestionIdentifier: c.FormValue("question_identifier"),
		MediaType:          c.FormValue("media_type"),
		Resolution:         c.FormValue("resolution"),
		QualitySetting:     c.FormValue("quality_setting"),
	}

	if !model.ValidAssessmentType(req.AssessmentType) {
		return nil, nil, invalidCapture("unknown assessment_type")
	}

	if !model.ValidMediaType(req.MediaType) {
		return nil, nil, invalidCapture("unknown media_type")
	}

	if v := c.FormValue("captured_at_ms"); v != "" {
		if req.CapturedAtMs, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, nil, invalidCapture("invalid captured_at_ms")
		}
	}

	if v := c.FormValue("duration_ms"); v != "" {
		if req.DurationMs, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, nil, invalidCapture("invalid duration_ms")
		}
	}

	if v := c.FormValue("settings"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Settings); err != nil {
			return nil, nil, invalidCapture("invalid settings snapshot")
		}
	}

	return req, fh, nil
}

func invalidCapture(reason string) error {
	return errors.Join(model.ErrInvalidCapture, errors.New(reason))
}

// captureError maps the failure taxonomy onto HTTP statuses and the
// retryable flag the capture client keys its retry loop on.
func captureError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrInvalidCapture), errors.Is(err, model.ErrSizeExceeded):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrStorageWriteFailed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	}

	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	return c.JSON(status, map[string]interface{}{
		"error":     err.Error(),
		"retryable": model.Retryable(err),
	})
}
