package service

import (
	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/internal/repository"
)

type ExamService struct {
	Repo *repository.ExamRepository
}

func NewExamService(repo *repository.ExamRepository) *ExamService {
	return &ExamService{Repo: repo}
}

type ExamRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *ExamService) Create(userID uint, req ExamRequest) (*model.Exam, error) {
	exam := &model.Exam{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.Repo.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) Get(id uint) (*model.Exam, error) {
	return s.Repo.FindByIDWithQuestions(id)
}

func (s *ExamService) ListByOwner(userID uint, page, limit int) ([]model.Exam, int64, error) {
	return s.Repo.ListByOwner(userID, page, limit)
}

func (s *ExamService) Update(id uint, req ExamRequest) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	exam.Title = req.Title
	exam.Description = req.Description
	if err := s.Repo.Update(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
