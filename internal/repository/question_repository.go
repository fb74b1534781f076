package repository

import (
	"github.com/anand2468/easyeval/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) ListByExam(examID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("exam_id = ?", examID).Order("position asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

// OwnerOf walks the question -> exam -> user chain.
func (r *QuestionRepository) OwnerOf(questionID uint) (uint, error) {
	var userID uint
	err := r.DB.Model(&model.Question{}).
		Select("exams.user_id").
		Joins("JOIN exams ON exams.id = questions.exam_id AND exams.deleted_at IS NULL").
		Where("questions.id = ?", questionID).
		Scan(&userID).Error
	if err != nil {
		return 0, err
	}
	if userID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return userID, nil
}
