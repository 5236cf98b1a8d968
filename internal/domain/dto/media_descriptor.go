package dto

// MediaDescriptor is the wire representation of one ledger row, returned
// by the capture endpoint and the file listings. It never carries bytes.
type MediaDescriptor struct {
	ID                 string `json:"id"`
	SessionID          string `json:"session_id"`
	UserID             string `json:"user_id"`
	AssessmentType     string `json:"assessment_type"`
	QuestionIdentifier string `json:"question_identifier"`
	MediaType          string `json:"media_type"`
	RelativePath       string `json:"relative_path"`
	OriginalFilename   string `json:"original_filename"`
	MimeType           string `json:"mime_type"`
	SizeBytes          int64  `json:"size_bytes"`
	DurationMs         int64  `json:"duration_ms"`
	Resolution         string `json:"resolution"`
	QualitySetting     string `json:"quality_setting"`
	CapturedAt         int64  `json:"captured_at"`
	CreatedAt          int64  `json:"created_at"`
}
