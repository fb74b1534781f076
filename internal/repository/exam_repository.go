package repository

import (
	"github.com/anand2468/easyeval/internal/model"
	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc, id asc")
	}).First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) ListByOwner(userID uint, page, limit int) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64
	query := r.DB.Model(&model.Exam{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

// Delete removes the exam together with its questions, responses and answer
// rows in one transaction.
func (r *ExamRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var responseIDs []uint
		if err := tx.Model(&model.Response{}).Where("exam_id = ?", id).Pluck("id", &responseIDs).Error; err != nil {
			return err
		}
		if len(responseIDs) > 0 {
			if err := tx.Where("response_id IN ?", responseIDs).Delete(&model.ResponseAnswer{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, id).Error
	})
}

// OwnerOf resolves an exam id to its owning user id.
func (r *ExamRepository) OwnerOf(examID uint) (uint, error) {
	var exam model.Exam
	if err := r.DB.Select("user_id").First(&exam, examID).Error; err != nil {
		return 0, err
	}
	return exam.UserID, nil
}
