package model

import "time"

// Assessment workflows that produce captures.
const (
	AssessmentPHQ9          = "phq9"
	AssessmentOpenQuestions = "open_questions"
)

// Media types accepted from the capture client.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// MediaRecord is one row of the media ledger: the metadata of a single
// captured file. Rows are append-only; only the retention sweeper or an
// administrative purge removes them.
type MediaRecord struct {
	ID                 string          `bson:"_id"`
	SessionID          string          `bson:"session_id"`
	UserID             string          `bson:"user_id"`
	AssessmentType     string          `bson:"assessment_type"`
	QuestionIdentifier string          `bson:"question_identifier"`
	MediaType          string          `bson:"media_type"`
	RelativePath       string          `bson:"relative_path"`
	OriginalFilename   string          `bson:"original_filename"`
	MimeType           string          `bson:"mime_type"`
	SizeBytes          int64           `bson:"size_bytes"`
	DurationMs         int64           `bson:"duration_ms"` // 0 for images
	Resolution         string          `bson:"resolution"`
	QualitySetting     string          `bson:"quality_setting"`
	CapturedAt         time.Time       `bson:"captured_at"` // client-reported, advisory
	CreatedAt          time.Time       `bson:"created_at"`  // server-assigned, authoritative for retention
	CaptureSettings    CaptureSettings `bson:"capture_settings"`
}

// CaptureSettings is the configuration snapshot in effect at capture time.
// It is an immutable audit record, never a live configuration reference.
type CaptureSettings struct {
	CaptureMode     string  `bson:"capture_mode" json:"capture_mode"` // interval, event_driven, video_continuous
	IntervalSeconds int     `bson:"interval_seconds" json:"interval_seconds"`
	Resolution      string  `bson:"resolution" json:"resolution"`
	ImageQuality    float64 `bson:"image_quality" json:"image_quality"`
	VideoQuality    string  `bson:"video_quality" json:"video_quality"`
}

func ValidAssessmentType(t string) bool {
	return t == AssessmentPHQ9 || t == AssessmentOpenQuestions
}

func ValidMediaType(t string) bool {
	return t == MediaImage || t == MediaVideo
}
