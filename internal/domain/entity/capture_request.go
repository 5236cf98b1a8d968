package entity

import (
	"io"

	"emostore/internal/domain/model"
)

// CaptureRequest carries one incoming capture: the payload stream plus the
// structured fields the browser collaborator attaches to it.
type CaptureRequest struct {
	SessionID          string
	UserID             string
	AssessmentType     string
	QuestionIdentifier string
	MediaType          string
	OriginalFilename   string
	Body               io.Reader
	CapturedAtMs       int64
	DurationMs         int64
	Resolution         string
	QualitySetting     string
	Settings           model.CaptureSettings
}
