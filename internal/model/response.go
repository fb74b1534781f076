package model

import "time"

// Response is one student's answer sheet for an exam, identified by a roll
// number unique within that exam. Marks, remarks and evaluated_at stay NULL
// until the first evaluation run and are overwritten by every later run.
// swagger:model Response
type Response struct {
	BaseModel
	ExamID      uint             `gorm:"uniqueIndex:idx_exam_roll;type:bigint unsigned;not null" json:"examId"`
	RollNo      string           `gorm:"uniqueIndex:idx_exam_roll;size:50;not null" json:"rollNo"`
	ImageURL    *string          `gorm:"size:512" json:"imageUrl,omitempty"` // legacy whole-sheet scan
	Marks       *int             `json:"marks"`
	Remarks     *string          `gorm:"size:255" json:"remarks"`
	EvaluatedAt *time.Time       `json:"evaluatedAt"`
	Answers     []ResponseAnswer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

// ResponseAnswer holds one response's answer to one question, as typed text
// and/or an uploaded image. At least one of the two must be present.
// swagger:model ResponseAnswer
type ResponseAnswer struct {
	BaseModel
	ResponseID  uint       `gorm:"uniqueIndex:idx_response_question;type:bigint unsigned;not null" json:"responseId"`
	QuestionID  uint       `gorm:"uniqueIndex:idx_response_question;type:bigint unsigned;not null" json:"questionId"`
	ImageURL    *string    `gorm:"size:512" json:"imageUrl,omitempty"`
	AnswerText  *string    `gorm:"type:text" json:"answerText,omitempty"`
	Marks       *int       `json:"marks"`
	Remarks     *string    `gorm:"size:255" json:"remarks"`
	EvaluatedAt *time.Time `json:"evaluatedAt"`
}

func (ResponseAnswer) TableName() string {
	return "response_answers"
}
