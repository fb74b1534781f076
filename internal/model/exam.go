package model

// Exam is an owner-authored collection of questions. Deleting an exam
// removes its questions and responses with it.
// swagger:model Exam
type Exam struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Questions   []Question `gorm:"foreignKey:ExamID" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
