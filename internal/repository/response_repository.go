package repository

import (
	"time"

	"github.com/anand2468/easyeval/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// CreateWithAnswers inserts the response and all of its answer rows in one
// transaction, so a duplicate roll number leaves no orphaned answers behind.
func (r *ResponseRepository) CreateWithAnswers(response *model.Response, answers []model.ResponseAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ResponseID = response.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		response.Answers = answers
		return nil
	})
}

func (r *ResponseRepository) FindByID(id uint) (*model.Response, error) {
	var resp model.Response
	err := r.DB.First(&resp, id).Error
	return &resp, err
}

func (r *ResponseRepository) FindByIDWithAnswers(id uint) (*model.Response, error) {
	var resp model.Response
	err := r.DB.Preload("Answers").First(&resp, id).Error
	return &resp, err
}

func (r *ResponseRepository) ListByExam(examID uint, page, limit int) ([]model.Response, int64, error) {
	var responses []model.Response
	var total int64
	query := r.DB.Model(&model.Response{}).Where("exam_id = ?", examID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&responses).Error
	return responses, total, err
}

func (r *ResponseRepository) ExistsByExamAndRoll(examID uint, rollNo string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Response{}).
		Where("exam_id = ? AND roll_no = ?", examID, rollNo).
		Count(&count).Error
	return count > 0, err
}

func (r *ResponseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", id).Delete(&model.ResponseAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Response{}, id).Error
	})
}

// AnswersForEvaluation returns the response's answers joined with their
// question's maximum marks. Answers whose question row is gone keep a
// maximum of 1 so they still get scored.
func (r *ResponseRepository) AnswersForEvaluation(responseID uint) ([]model.EvaluableAnswer, error) {
	var rows []model.EvaluableAnswer
	err := r.DB.Model(&model.ResponseAnswer{}).
		Select("response_answers.id AS answer_id, response_answers.question_id AS question_id, COALESCE(questions.max_marks, 1) AS max_marks").
		Joins("LEFT JOIN questions ON questions.id = response_answers.question_id AND questions.deleted_at IS NULL").
		Where("response_answers.response_id = ?", responseID).
		Order("response_answers.id asc").
		Scan(&rows).Error
	return rows, err
}

func (r *ResponseRepository) UpdateAnswerScore(answerID uint, marks int, remark string, evaluatedAt time.Time) error {
	return r.DB.Model(&model.ResponseAnswer{}).
		Where("id = ?", answerID).
		Updates(map[string]interface{}{
			"marks":        marks,
			"remarks":      remark,
			"evaluated_at": evaluatedAt,
		}).Error
}

func (r *ResponseRepository) UpdateAggregate(responseID uint, totalMarks int, remark string, evaluatedAt time.Time) error {
	return r.DB.Model(&model.Response{}).
		Where("id = ?", responseID).
		Updates(map[string]interface{}{
			"marks":        totalMarks,
			"remarks":      remark,
			"evaluated_at": evaluatedAt,
		}).Error
}

// ExamSummary aggregates response counts and average marks for one exam.
func (r *ResponseRepository) ExamSummary(examID uint) (*model.ExamSummary, error) {
	summary := &model.ExamSummary{ExamID: examID}

	if err := r.DB.Model(&model.Response{}).
		Where("exam_id = ?", examID).
		Count(&summary.ResponseCount).Error; err != nil {
		return nil, err
	}

	type aggRow struct {
		Evaluated int64
		Average   float64
	}
	var row aggRow
	err := r.DB.Model(&model.Response{}).
		Select("COUNT(*) AS evaluated, COALESCE(AVG(marks), 0) AS average").
		Where("exam_id = ? AND evaluated_at IS NOT NULL", examID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	summary.EvaluatedCount = row.Evaluated
	summary.AverageMarks = row.Average
	return summary, nil
}

// OwnerOf walks the response -> exam -> user chain.
func (r *ResponseRepository) OwnerOf(responseID uint) (uint, error) {
	var userID uint
	err := r.DB.Model(&model.Response{}).
		Select("exams.user_id").
		Joins("JOIN exams ON exams.id = responses.exam_id AND exams.deleted_at IS NULL").
		Where("responses.id = ?", responseID).
		Scan(&userID).Error
	if err != nil {
		return 0, err
	}
	if userID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return userID, nil
}
