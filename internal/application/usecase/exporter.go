package usecase

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"time"

	"emostore/internal/domain/dto"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/pkg/logger"
)

var unsafeEntryChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Exporter assembles a session's downloadable bundle: session metadata,
// the structured questionnaire and chat responses, every recoverable
// media file, and a manifest covering all ledger rows. The archive is
// written entry by entry straight into w, never buffered whole, so
// exports larger than memory stay exportable.
type Exporter struct {
	lister     dbRepository.Lister
	responses  dbRepository.ResponseReader
	blobReader blob.Reader
}

func NewExporter(lister dbRepository.Lister, responses dbRepository.ResponseReader,
	blobReader blob.Reader,
) *Exporter {
	return &Exporter{
		lister:     lister,
		responses:  responses,
		blobReader: blobReader,
	}
}

// ExportSession writes the archive for the session into w. A session with
// no media records yields a manifest-only archive; a record whose blob
// was already reclaimed by retention becomes a manifest row marked
// missing instead of failing the export.
func (e *Exporter) ExportSession(ctx context.Context, sessionID string, w io.Writer) error {
	records, err := e.lister.ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	if err := e.writeSessionMetadata(zw, sessionID, records); err != nil {
		return err
	}

	e.writeResponses(ctx, zw, sessionID)

	manifest := make([]dto.ManifestEntry, 0, len(records))
	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := e.writeMediaEntry(ctx, zw, &records[i])
		if err != nil {
			return err
		}
		manifest = append(manifest, entry)
	}

	if err := writeJSONEntry(zw, "manifest.json", manifest); err != nil {
		return err
	}

	return zw.Close()
}

func (e *Exporter) writeSessionMetadata(zw *zip.Writer, sessionID string,
	records []model.MediaRecord,
) error {
	meta := dto.SessionMetadata{
		SessionID:       sessionID,
		MediaRecords:    len(records),
		ExportTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	for i := range records {
		meta.UserID = records[i].UserID
		meta.TotalMediaBytes += records[i].SizeBytes
		switch records[i].MediaType {
		case model.MediaImage:
			meta.ImagesCaptured++
		case model.MediaVideo:
			meta.VideosCaptured++
		}
	}

	return writeJSONEntry(zw, "session_metadata.json", meta)
}

// writeResponses adds the questionnaire and chat response documents.
// These collections belong to the assessment collaborator; a read fault
// degrades to a logged omission, it never sinks the whole export.
func (e *Exporter) writeResponses(ctx context.Context, zw *zip.Writer, sessionID string) {
	phq9, err := e.responses.PHQ9BySession(ctx, sessionID)
	if err != nil {
		logger.Error("export: phq9 responses unavailable", "session", sessionID, "err", err.Error())
	} else if len(phq9) > 0 {
		if err := writeJSONEntry(zw, "phq9_responses.json", phq9); err != nil {
			logger.Error("export: writing phq9 responses failed", "session", sessionID, "err", err.Error())
		}
		if err := writePHQ9CSV(zw, phq9); err != nil {
			logger.Error("export: writing phq9 csv failed", "session", sessionID, "err", err.Error())
		}
	}

	open, err := e.responses.OpenQuestionsBySession(ctx, sessionID)
	if err != nil {
		logger.Error("export: open question responses unavailable", "session", sessionID, "err", err.Error())
	} else if len(open) > 0 {
		if err := writeJSONEntry(zw, "open_question_responses.json", open); err != nil {
			logger.Error("export: writing open responses failed", "session", sessionID, "err", err.Error())
		}
	}
}

func (e *Exporter) writeMediaEntry(ctx context.Context, zw *zip.Writer,
	record *model.MediaRecord,
) (dto.ManifestEntry, error) {
	entry := dto.ManifestEntry{
		FileID:             record.ID,
		OriginalPath:       record.RelativePath,
		AssessmentType:     record.AssessmentType,
		QuestionIdentifier: record.QuestionIdentifier,
		MediaType:          record.MediaType,
		MimeType:           record.MimeType,
		SizeBytes:          record.SizeBytes,
		DurationMs:         record.DurationMs,
		Resolution:         record.Resolution,
		QualitySetting:     record.QualitySetting,
		CapturedAt:         record.CapturedAt.UTC().Format(time.RFC3339),
	}

	rc, _, err := e.blobReader.Open(ctx, record.RelativePath)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Reclaimed by retention (or lost): note it and keep going.
			entry.Missing = true
			entry.Note = "file missing"

			return entry, nil
		}

		return entry, err
	}
	defer rc.Close()

	name := fmt.Sprintf("media/%s/%ss/%s_%s%s",
		record.AssessmentType,
		record.MediaType,
		unsafeEntryChars.ReplaceAllString(record.QuestionIdentifier, "_"),
		record.ID,
		path.Ext(record.RelativePath))

	ew, err := zw.Create(name)
	if err != nil {
		return entry, err
	}

	if _, err := io.Copy(ew, rc); err != nil {
		return entry, err
	}

	entry.ExportPath = name

	return entry, nil
}

// writePHQ9CSV adds the questionnaire answers a second time as a flat
// spreadsheet, for reviewers who work outside JSON tooling.
func writePHQ9CSV(zw *zip.Writer, responses []model.PHQ9Response) error {
	ew, err := zw.Create("phq9_responses.csv")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(ew)
	if err := cw.Write([]string{"question_number", "response_value", "response_time_ms", "created_at"}); err != nil {
		return err
	}

	for _, response := range responses {
		row := []string{
			strconv.Itoa(response.QuestionNumber),
			strconv.Itoa(response.ResponseValue),
			strconv.FormatInt(response.ResponseTimeMs, 10),
			response.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeJSONEntry(zw *zip.Writer, name string, v interface{}) error {
	ew, err := zw.Create(name)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(ew)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
