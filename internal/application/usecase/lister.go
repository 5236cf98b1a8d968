package usecase

import (
	"context"

	"emostore/internal/domain/dto"
	"emostore/internal/domain/model"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/internal/domain/storagepath"
)

// Lister serves the "session files" and "my files" views: ordered
// metadata, never bytes.
type Lister struct {
	lister dbRepository.Lister
}

func NewLister(lister dbRepository.Lister) *Lister {
	return &Lister{lister: lister}
}

func (l *Lister) SessionFiles(ctx context.Context, sessionID string) ([]dto.MediaDescriptor, error) {
	if err := storagepath.ValidateIdentifier(sessionID); err != nil {
		return nil, model.ErrInvalidCapture
	}

	records, err := l.lister.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return describeAll(records), nil
}

func (l *Lister) UserFiles(ctx context.Context, userID string) ([]dto.MediaDescriptor, error) {
	if err := storagepath.ValidateIdentifier(userID); err != nil {
		return nil, model.ErrInvalidCapture
	}

	records, err := l.lister.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return describeAll(records), nil
}

func describeAll(records []model.MediaRecord) []dto.MediaDescriptor {
	descriptors := make([]dto.MediaDescriptor, 0, len(records))
	for i := range records {
		descriptors = append(descriptors, Describe(&records[i]))
	}

	return descriptors
}

// Describe converts a ledger row into its wire representation.
func Describe(record *model.MediaRecord) dto.MediaDescriptor {
	return dto.MediaDescriptor{
		ID:                 record.ID,
		SessionID:          record.SessionID,
		UserID:             record.UserID,
		AssessmentType:     record.AssessmentType,
		QuestionIdentifier: record.QuestionIdentifier,
		MediaType:          record.MediaType,
		RelativePath:       record.RelativePath,
		OriginalFilename:   record.OriginalFilename,
		MimeType:           record.MimeType,
		SizeBytes:          record.SizeBytes,
		DurationMs:         record.DurationMs,
		Resolution:         record.Resolution,
		QualitySetting:     record.QualitySetting,
		CapturedAt:         record.CapturedAt.UnixMilli(),
		CreatedAt:          record.CreatedAt.UnixMilli(),
	}
}
