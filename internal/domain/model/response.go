package model

import "time"

// PHQ9Response is one answered questionnaire item. Owned by the external
// assessment collaborator; read here only to include it in export bundles.
type PHQ9Response struct {
	SessionID      string    `bson:"session_id" json:"-"`
	QuestionNumber int       `bson:"question_number" json:"question_number"`
	ResponseValue  int       `bson:"response_value" json:"response_value"`
	ResponseTimeMs int64     `bson:"response_time_ms" json:"response_time_ms"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// OpenQuestionResponse is one exchange of the open-question chat flow,
// read here only for export.
type OpenQuestionResponse struct {
	SessionID      string    `bson:"session_id" json:"-"`
	QuestionText   string    `bson:"question_text" json:"question_text"`
	ResponseText   string    `bson:"response_text" json:"response_text"`
	ResponseTimeMs int64     `bson:"response_time_ms" json:"response_time_ms"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
