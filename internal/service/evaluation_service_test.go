package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/pkg/logger"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// fakeEvalStore records every write so tests can assert on exactly what an
// evaluation run persisted.
type fakeEvalStore struct {
	mu sync.Mutex

	response *model.Response
	findErr  error

	answers    []model.EvaluableAnswer
	answersErr error

	failAnswerIDs map[uint]bool
	answerWrites  map[uint]scoredAnswer

	aggregateErr    error
	aggregateTotal  int
	aggregateRemark string
	aggregateAt     time.Time
	aggregateCalls  int
}

func (f *fakeEvalStore) FindByID(id uint) (*model.Response, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.response, nil
}

func (f *fakeEvalStore) AnswersForEvaluation(responseID uint) ([]model.EvaluableAnswer, error) {
	if f.answersErr != nil {
		return nil, f.answersErr
	}
	return f.answers, nil
}

func (f *fakeEvalStore) UpdateAnswerScore(answerID uint, marks int, remark string, evaluatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAnswerIDs[answerID] {
		return fmt.Errorf("simulated write failure for answer %d", answerID)
	}
	if f.answerWrites == nil {
		f.answerWrites = make(map[uint]scoredAnswer)
	}
	f.answerWrites[answerID] = scoredAnswer{answerID: answerID, marks: marks, remark: remark}
	return nil
}

func (f *fakeEvalStore) UpdateAggregate(responseID uint, totalMarks int, remark string, evaluatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.aggregateErr != nil {
		return f.aggregateErr
	}
	f.aggregateCalls++
	f.aggregateTotal = totalMarks
	f.aggregateRemark = remark
	f.aggregateAt = evaluatedAt
	return nil
}

// fixedScorer always awards the same marks, capped at the question maximum.
type fixedScorer struct {
	marks  int
	remark string
}

func (s fixedScorer) Score(maxMarks int) (int, string) {
	if s.marks > maxMarks {
		return maxMarks, s.remark
	}
	return s.marks, s.remark
}

type fakeInvalidator struct {
	mu      sync.Mutex
	examIDs []uint
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, examID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.examIDs = append(f.examIDs, examID)
	return nil
}

func newEvalService(store *fakeEvalStore, scorer Scorer) (*EvaluationService, *fakeInvalidator) {
	inv := &fakeInvalidator{}
	return &EvaluationService{Store: store, Scorer: scorer, Cache: inv}, inv
}

func TestEvaluateSumsComputedMarks(t *testing.T) {
	store := &fakeEvalStore{
		response: &model.Response{ExamID: 3},
		answers: []model.EvaluableAnswer{
			{AnswerID: 1, QuestionID: 11, MaxMarks: 5},
			{AnswerID: 2, QuestionID: 12, MaxMarks: 4},
			{AnswerID: 3, QuestionID: 13, MaxMarks: 6},
		},
	}
	svc, inv := newEvalService(store, fixedScorer{marks: 100, remark: "ok"})

	result, err := svc.Evaluate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if result.AnswersEvaluated != 3 {
		t.Fatalf("expected 3 answers evaluated, got %d", result.AnswersEvaluated)
	}
	if result.TotalMarks != 15 {
		t.Fatalf("expected total 15, got %d", result.TotalMarks)
	}
	if store.aggregateTotal != 15 {
		t.Fatalf("expected aggregate 15 persisted, got %d", store.aggregateTotal)
	}
	if store.aggregateRemark != "Total: 15 marks. 3 questions evaluated." {
		t.Fatalf("unexpected aggregate remark %q", store.aggregateRemark)
	}
	if store.aggregateAt.IsZero() {
		t.Fatalf("expected evaluated_at to be set")
	}
	if len(store.answerWrites) != 3 {
		t.Fatalf("expected 3 answer writes, got %d", len(store.answerWrites))
	}
	for id, w := range store.answerWrites {
		if w.remark != "ok" {
			t.Fatalf("answer %d remark = %q, want ok", id, w.remark)
		}
	}
	if len(inv.examIDs) != 1 || inv.examIDs[0] != 3 {
		t.Fatalf("expected cache invalidation for exam 3, got %v", inv.examIDs)
	}
}

func TestEvaluateZeroAnswers(t *testing.T) {
	store := &fakeEvalStore{response: &model.Response{ExamID: 1}}
	svc, _ := newEvalService(store, fixedScorer{marks: 5})

	result, err := svc.Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if result.AnswersEvaluated != 0 || result.TotalMarks != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if store.aggregateCalls != 1 {
		t.Fatalf("expected aggregate still written once, got %d calls", store.aggregateCalls)
	}
	if store.aggregateTotal != 0 {
		t.Fatalf("expected aggregate 0, got %d", store.aggregateTotal)
	}
	if store.aggregateRemark != "Total: 0 marks. 0 questions evaluated." {
		t.Fatalf("unexpected remark %q", store.aggregateRemark)
	}
}

func TestEvaluateContinuesAfterAnswerWriteFailure(t *testing.T) {
	store := &fakeEvalStore{
		response: &model.Response{ExamID: 2},
		answers: []model.EvaluableAnswer{
			{AnswerID: 1, MaxMarks: 10},
			{AnswerID: 2, MaxMarks: 10},
			{AnswerID: 3, MaxMarks: 10},
		},
		failAnswerIDs: map[uint]bool{2: true},
	}
	svc, _ := newEvalService(store, fixedScorer{marks: 7, remark: "ok"})

	result, err := svc.Evaluate(context.Background(), 9)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// The failed write's computed marks still count toward the total.
	if result.TotalMarks != 21 {
		t.Fatalf("expected total 21 including the failed answer, got %d", result.TotalMarks)
	}
	if result.AnswersEvaluated != 3 {
		t.Fatalf("expected 3 answers evaluated, got %d", result.AnswersEvaluated)
	}
	if len(store.answerWrites) != 2 {
		t.Fatalf("expected 2 persisted answers, got %d", len(store.answerWrites))
	}
	if _, ok := store.answerWrites[2]; ok {
		t.Fatalf("answer 2 should not have been persisted")
	}
	if store.aggregateTotal != 21 {
		t.Fatalf("expected aggregate 21, got %d", store.aggregateTotal)
	}
}

func TestEvaluateRespectsQuestionMaximum(t *testing.T) {
	store := &fakeEvalStore{
		response: &model.Response{ExamID: 1},
		answers: []model.EvaluableAnswer{
			{AnswerID: 1, MaxMarks: 0},
			{AnswerID: 2, MaxMarks: 3},
		},
	}
	svc, _ := newEvalService(store, RandomScorer{})

	result, err := svc.Evaluate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.TotalMarks < 0 || result.TotalMarks > 3 {
		t.Fatalf("total %d out of range [0, 3]", result.TotalMarks)
	}
	if w := store.answerWrites[1]; w.marks != 0 {
		t.Fatalf("zero-max answer scored %d, want 0", w.marks)
	}
}

func TestEvaluateFetchFailure(t *testing.T) {
	store := &fakeEvalStore{findErr: errors.New("not found")}
	svc, _ := newEvalService(store, fixedScorer{})

	if _, err := svc.Evaluate(context.Background(), 5); err == nil {
		t.Fatalf("expected error when the response cannot be fetched")
	}
	if store.aggregateCalls != 0 {
		t.Fatalf("aggregate must not be written on fetch failure")
	}
}

func TestEvaluateAggregateWriteFailure(t *testing.T) {
	store := &fakeEvalStore{
		response:     &model.Response{ExamID: 1},
		answers:      []model.EvaluableAnswer{{AnswerID: 1, MaxMarks: 2}},
		aggregateErr: errors.New("disk full"),
	}
	svc, inv := newEvalService(store, fixedScorer{marks: 1})

	if _, err := svc.Evaluate(context.Background(), 5); err == nil {
		t.Fatalf("expected aggregate write failure to surface")
	}
	if len(inv.examIDs) != 0 {
		t.Fatalf("cache must not be invalidated when the aggregate write fails")
	}
}

func TestEvaluateConcurrentWithWorkerReload(t *testing.T) {
	answers := make([]model.EvaluableAnswer, 32)
	for i := range answers {
		answers[i] = model.EvaluableAnswer{AnswerID: uint(i + 1), MaxMarks: 5}
	}
	store := &fakeEvalStore{
		response: &model.Response{ExamID: 1},
		answers:  answers,
	}
	svc := NewEvaluationService(store, fixedScorer{marks: 1, remark: "ok"}, nil, 2)

	// A config reload changing the worker cap while runs are in flight
	// must not disturb them; run under -race.
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; ; i++ {
			select {
			case <-done:
				return
			default:
				svc.SetWorkers(i%16 + 1)
			}
		}
	}()

	for run := 0; run < 20; run++ {
		result, err := svc.Evaluate(context.Background(), 1)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if result.TotalMarks != 32 {
			t.Fatalf("run %d: total = %d, want 32", run, result.TotalMarks)
		}
	}
	close(done)
	wg.Wait()
}

func TestEvaluateReRunOverwritesInPlace(t *testing.T) {
	store := &fakeEvalStore{
		response: &model.Response{ExamID: 1},
		answers: []model.EvaluableAnswer{
			{AnswerID: 1, MaxMarks: 10},
			{AnswerID: 2, MaxMarks: 10},
		},
	}
	svc, _ := newEvalService(store, RandomScorer{})

	for run := 0; run < 3; run++ {
		result, err := svc.Evaluate(context.Background(), 4)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if result.AnswersEvaluated != 2 {
			t.Fatalf("run %d: expected 2 answers, got %d", run, result.AnswersEvaluated)
		}
		// One write per answer, keyed by id: re-runs overwrite rather
		// than accumulate.
		if len(store.answerWrites) != 2 {
			t.Fatalf("run %d: expected 2 answer rows, got %d", run, len(store.answerWrites))
		}
	}
}
