package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
	"emostore/internal/domain/repository/broker"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/internal/domain/repository/settings"
	"emostore/internal/domain/storagepath"
	"emostore/pkg/logger"
	"emostore/pkg/utils"
)

// sniffLen is how much of the payload head is used for MIME detection.
const sniffLen = 3072

// Capturer coordinates the blob store and the ledger as one logical
// transaction per capture. The blob is written first; if the ledger
// insert then fails, the blob is deleted again before the error
// surfaces, so callers observe either a fully-linked record or nothing.
type Capturer struct {
	allocator   *storagepath.Allocator
	blobWriter  blob.Writer
	blobRemover blob.Remover
	usage       blob.UsageMeter
	creator     dbRepository.Creator
	publisher   broker.Publisher
	policy      settings.Provider
}

func NewCapturer(allocator *storagepath.Allocator, blobWriter blob.Writer,
	blobRemover blob.Remover, usage blob.UsageMeter, creator dbRepository.Creator,
	publisher broker.Publisher, policy settings.Provider,
) *Capturer {
	return &Capturer{
		allocator:   allocator,
		blobWriter:  blobWriter,
		blobRemover: blobRemover,
		usage:       usage,
		creator:     creator,
		publisher:   publisher,
		policy:      policy,
	}
}

func (c *Capturer) Capture(ctx context.Context, req entity.CaptureRequest) (*model.MediaRecord, error) {
	policy := c.policy.Current(ctx)

	if err := storagepath.ValidateIdentifier(req.QuestionIdentifier); err != nil {
		return nil, fmt.Errorf("%w: question identifier: %s", model.ErrInvalidCapture, err.Error())
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.Body, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %s", model.ErrStorageWriteFailed, err.Error())
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty payload", model.ErrInvalidCapture)
	}

	detected := mimetype.Detect(head[:n]).String()
	if !utils.MatchesMediaType(detected, req.MediaType) {
		return nil, fmt.Errorf("%w: detected %s, declared media type %s",
			model.ErrInvalidCapture, detected, req.MediaType)
	}

	capturedAt := time.Now().UTC()
	if req.CapturedAtMs > 0 {
		capturedAt = time.UnixMilli(req.CapturedAtMs).UTC()
	}

	relativePath, err := c.allocator.Allocate(capturedAt, req.UserID, req.AssessmentType,
		req.SessionID, req.MediaType, utils.GetExtensionFromMimeType(detected))
	if err != nil {
		return nil, err
	}

	body := io.MultiReader(bytes.NewReader(head[:n]), req.Body)

	written, err := c.blobWriter.Write(ctx, relativePath, body, policy.MaxFileSizeBytes)
	if err != nil {
		return nil, err
	}

	durationMs := req.DurationMs
	if req.MediaType == model.MediaImage {
		durationMs = 0
	}

	record := &model.MediaRecord{
		ID:                 uuid.NewString(),
		SessionID:          req.SessionID,
		UserID:             req.UserID,
		AssessmentType:     req.AssessmentType,
		QuestionIdentifier: req.QuestionIdentifier,
		MediaType:          req.MediaType,
		RelativePath:       written.RelativePath,
		OriginalFilename:   req.OriginalFilename,
		MimeType:           detected,
		SizeBytes:          written.SizeBytes,
		DurationMs:         durationMs,
		Resolution:         req.Resolution,
		QualitySetting:     req.QualitySetting,
		CapturedAt:         capturedAt,
		CreatedAt:          time.Now().UTC(),
		CaptureSettings:    req.Settings,
	}

	if err := c.creator.Create(ctx, record); err != nil {
		// Compensating delete: a blob without a ledger row is unreachable
		// and must not survive the failed capture.
		if removeErr := c.blobRemover.Remove(ctx, written.RelativePath); removeErr != nil {
			logger.Error("compensating blob delete failed, blob is orphaned",
				"path", written.RelativePath, "err", removeErr.Error())
		}

		return nil, err
	}

	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, record.ID); err != nil {
			// The analysis stream is an advisory hand-off, not a commit
			// phase. The capture stands.
			logger.Error("failed to publish capture event", "media_id", record.ID, "err", err.Error())
		}
	}

	if usage, err := c.usage.UsageBytes(ctx); err == nil && usage > policy.CapacityCeilingBytes {
		logger.Warn("storage usage above capacity ceiling, sweep needed",
			"usage_bytes", usage, "ceiling_bytes", policy.CapacityCeilingBytes)
	}

	return record, nil
}
