package dto

// ManifestEntry is one row of the export archive manifest. Every ledger
// row of the session appears here, including records whose blob has
// already been reclaimed by the retention sweeper.
type ManifestEntry struct {
	FileID             string `json:"file_id"`
	OriginalPath       string `json:"original_path"`
	ExportPath         string `json:"export_path,omitempty"`
	AssessmentType     string `json:"assessment_type"`
	QuestionIdentifier string `json:"question_identifier"`
	MediaType          string `json:"media_type"`
	MimeType           string `json:"mime_type"`
	SizeBytes          int64  `json:"size_bytes"`
	DurationMs         int64  `json:"duration_ms"`
	Resolution         string `json:"resolution"`
	QualitySetting     string `json:"quality_setting"`
	CapturedAt         string `json:"captured_at"`
	Missing            bool   `json:"missing"`
	Note               string `json:"note,omitempty"`
}

// SessionMetadata heads every export archive.
type SessionMetadata struct {
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id,omitempty"`
	MediaRecords    int    `json:"media_records"`
	ImagesCaptured  int    `json:"images_captured"`
	VideosCaptured  int    `json:"videos_captured"`
	TotalMediaBytes int64  `json:"total_media_bytes"`
	ExportTimestamp string `json:"export_timestamp"`
}
