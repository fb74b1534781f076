package model

// swagger:model Question
type Question struct {
	BaseModel
	ExamID    uint   `gorm:"index;type:bigint unsigned;not null" json:"examId"`
	Text      string `gorm:"type:text;not null" json:"text"`
	AnswerKey string `gorm:"type:text" json:"answerKey"`
	Position  int    `gorm:"default:0" json:"position"`
	MaxMarks  int    `gorm:"default:1" json:"maxMarks"`
}

func (Question) TableName() string {
	return "questions"
}
