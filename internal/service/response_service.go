package service

import (
	"context"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/internal/util"
	"github.com/anand2468/easyeval/pkg/logger"
	"go.uber.org/zap"
)

// ResponseStore is the slice of the response repository the intake flow
// needs. ResponseRepository satisfies it.
type ResponseStore interface {
	CreateWithAnswers(response *model.Response, answers []model.ResponseAnswer) error
	ExistsByExamAndRoll(examID uint, rollNo string) (bool, error)
	FindByIDWithAnswers(id uint) (*model.Response, error)
	ListByExam(examID uint, page, limit int) ([]model.Response, int64, error)
	Delete(id uint) error
	ExamSummary(examID uint) (*model.ExamSummary, error)
}

type ResponseService struct {
	Store ResponseStore
	Cache *SummaryCache
}

func NewResponseService(store ResponseStore, cache *SummaryCache) *ResponseService {
	return &ResponseService{Store: store, Cache: cache}
}

type ResponseAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	AnswerText string `json:"answerText"`
	ImageURL   string `json:"imageUrl"`
}

type CreateResponseRequest struct {
	RollNo  string                  `json:"rollNo" binding:"required"`
	Answers []ResponseAnswerRequest `json:"answers" binding:"required,min=1"`
}

// Create stores a response and its answers. The duplicate roll check runs
// before any answer row is written; the unique index on (exam_id, roll_no)
// backs it up against races.
func (s *ResponseService) Create(examID uint, req CreateResponseRequest) (*model.Response, error) {
	exists, err := s.Store.ExistsByExamAndRoll(examID, req.RollNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrDuplicateRollNo
	}

	answers := make([]model.ResponseAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		if a.AnswerText == "" && a.ImageURL == "" {
			return nil, util.ErrEmptyAnswer
		}
		answer := model.ResponseAnswer{QuestionID: a.QuestionID}
		if a.AnswerText != "" {
			text := a.AnswerText
			answer.AnswerText = &text
		}
		if a.ImageURL != "" {
			url := a.ImageURL
			answer.ImageURL = &url
		}
		answers = append(answers, answer)
	}

	response := &model.Response{
		ExamID: examID,
		RollNo: req.RollNo,
	}
	if err := s.Store.CreateWithAnswers(response, answers); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ResponseService) Get(id uint) (*model.Response, error) {
	return s.Store.FindByIDWithAnswers(id)
}

func (s *ResponseService) ListByExam(examID uint, page, limit int) ([]model.Response, int64, error) {
	return s.Store.ListByExam(examID, page, limit)
}

func (s *ResponseService) Delete(id uint) error {
	return s.Store.Delete(id)
}

// ExamSummary serves per-exam response statistics, cache first.
func (s *ResponseService) ExamSummary(ctx context.Context, examID uint) (*model.ExamSummary, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, examID)
		if err != nil {
			logger.Log.Warn("exam summary cache read failed", zap.Uint("examId", examID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.Store.ExamSummary(examID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, summary); err != nil {
			logger.Log.Warn("exam summary cache write failed", zap.Uint("examId", examID), zap.Error(err))
		}
	}
	return summary, nil
}
