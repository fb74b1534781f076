package service

import (
	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/internal/repository"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

type QuestionRequest struct {
	Text      string `json:"text" binding:"required"`
	AnswerKey string `json:"answerKey"`
	Position  int    `json:"position"`
	MaxMarks  int    `json:"maxMarks"`
}

func (s *QuestionService) Create(examID uint, req QuestionRequest) (*model.Question, error) {
	maxMarks := req.MaxMarks
	if maxMarks <= 0 {
		maxMarks = 1
	}

	q := &model.Question{
		ExamID:    examID,
		Text:      req.Text,
		AnswerKey: req.AnswerKey,
		Position:  req.Position,
		MaxMarks:  maxMarks,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) ListByExam(examID uint) ([]model.Question, error) {
	return s.Repo.ListByExam(examID)
}

func (s *QuestionService) Update(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	q.Text = req.Text
	q.AnswerKey = req.AnswerKey
	q.Position = req.Position
	if req.MaxMarks > 0 {
		q.MaxMarks = req.MaxMarks
	}
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
