package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/pkg/logger"
	"go.uber.org/zap"
)

// EvaluationStore is the slice of the response repository the evaluator
// needs. ResponseRepository satisfies it.
type EvaluationStore interface {
	FindByID(id uint) (*model.Response, error)
	AnswersForEvaluation(responseID uint) ([]model.EvaluableAnswer, error)
	UpdateAnswerScore(answerID uint, marks int, remark string, evaluatedAt time.Time) error
	UpdateAggregate(responseID uint, totalMarks int, remark string, evaluatedAt time.Time) error
}

type summaryInvalidator interface {
	Invalidate(ctx context.Context, examID uint) error
}

const defaultEvaluationWorkers = 8

type EvaluationService struct {
	Store  EvaluationStore
	Scorer Scorer
	Cache  summaryInvalidator

	// workers is read per run and written by config reloads, hence atomic.
	workers atomic.Int32
}

func NewEvaluationService(store EvaluationStore, scorer Scorer, cache *SummaryCache, workers int) *EvaluationService {
	var inv summaryInvalidator
	if cache != nil {
		inv = cache
	}
	s := &EvaluationService{Store: store, Scorer: scorer, Cache: inv}
	s.SetWorkers(workers)
	return s
}

// SetWorkers updates the per-run write concurrency cap. Safe to call while
// evaluations are in flight; the next run picks up the new value.
func (s *EvaluationService) SetWorkers(n int) {
	if n <= 0 {
		n = defaultEvaluationWorkers
	}
	s.workers.Store(int32(n))
}

type EvaluationResult struct {
	TotalMarks       int `json:"totalMarks"`
	AnswersEvaluated int `json:"answersEvaluated"`
}

type scoredAnswer struct {
	answerID uint
	marks    int
	remark   string
}

// Evaluate scores every answer of one response and writes the aggregate
// back onto the response row. Re-running overwrites the previous scores;
// the numbers may differ between runs but the row shape never does.
//
// A failed per-answer write is logged and skipped, and the marks computed
// for it still count toward the total. The aggregate write is the one
// failure surfaced to the caller.
func (s *EvaluationService) Evaluate(ctx context.Context, responseID uint) (*EvaluationResult, error) {
	response, err := s.Store.FindByID(responseID)
	if err != nil {
		return nil, fmt.Errorf("fetch response %d: %w", responseID, err)
	}

	answers, err := s.Store.AnswersForEvaluation(responseID)
	if err != nil {
		return nil, fmt.Errorf("fetch answers for response %d: %w", responseID, err)
	}

	evaluatedAt := time.Now()
	totalMarks := 0
	scored := make([]scoredAnswer, 0, len(answers))
	for _, a := range answers {
		marks, remark := s.Scorer.Score(a.MaxMarks)
		totalMarks += marks
		scored = append(scored, scoredAnswer{answerID: a.AnswerID, marks: marks, remark: remark})
	}

	s.persistAnswerScores(scored, evaluatedAt)

	summary := fmt.Sprintf("Total: %d marks. %d questions evaluated.", totalMarks, len(scored))
	if err := s.Store.UpdateAggregate(responseID, totalMarks, summary, evaluatedAt); err != nil {
		return nil, fmt.Errorf("update response %d aggregate: %w", responseID, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, response.ExamID); err != nil {
			logger.Log.Warn("failed to invalidate exam summary cache",
				zap.Uint("examId", response.ExamID),
				zap.Error(err))
		}
	}

	return &EvaluationResult{
		TotalMarks:       totalMarks,
		AnswersEvaluated: len(scored),
	}, nil
}

// persistAnswerScores writes per-answer results through a bounded pool so a
// large response cannot fan out an unbounded number of concurrent writes.
func (s *EvaluationService) persistAnswerScores(scored []scoredAnswer, evaluatedAt time.Time) {
	workers := int(s.workers.Load())
	if workers <= 0 {
		workers = defaultEvaluationWorkers
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, sa := range scored {
		wg.Add(1)
		sem <- struct{}{}
		go func(sa scoredAnswer) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := s.Store.UpdateAnswerScore(sa.answerID, sa.marks, sa.remark, evaluatedAt); err != nil {
				logger.Log.Error("failed to persist answer score",
					zap.Uint("answerId", sa.answerID),
					zap.Int("marks", sa.marks),
					zap.Error(err))
			}
		}(sa)
	}
	wg.Wait()
}
