package database

import (
	"context"

	"emostore/internal/domain/model"
)

// ResponseReader reads the structured answers owned by the assessment
// collaborator, for inclusion in export bundles only.
type ResponseReader interface {
	PHQ9BySession(ctx context.Context, sessionID string) ([]model.PHQ9Response, error)
	OpenQuestionsBySession(ctx context.Context, sessionID string) ([]model.OpenQuestionResponse, error)
}
