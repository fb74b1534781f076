package model

// EvaluableAnswer is one answer row joined with its question's maximum
// marks, the unit of work for an evaluation run.
type EvaluableAnswer struct {
	AnswerID   uint `gorm:"column:answer_id"`
	QuestionID uint `gorm:"column:question_id"`
	MaxMarks   int  `gorm:"column:max_marks"`
}

// ExamSummary aggregates the state of an exam's responses for the teacher
// dashboard. Cached per exam and rebuilt after every evaluation run.
type ExamSummary struct {
	ExamID         uint    `json:"examId"`
	ResponseCount  int64   `json:"responseCount"`
	EvaluatedCount int64   `json:"evaluatedCount"`
	AverageMarks   float64 `json:"averageMarks"`
}
