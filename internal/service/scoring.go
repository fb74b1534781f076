package service

import "math/rand/v2"

// Scorer assigns marks and a remark to an answer given the question's
// maximum marks. The interface exists so a real grading algorithm can be
// substituted later without touching the evaluator or the HTTP contract.
type Scorer interface {
	Score(maxMarks int) (marks int, remark string)
}

// cannedRemarks is the fixed pool the random scorer picks from. The choice
// is independent of the marks drawn.
var cannedRemarks = []string{
	"Excellent work!",
	"Good attempt, keep it up.",
	"Satisfactory answer.",
	"Partially correct.",
	"Needs more detail.",
	"Requires improvement.",
}

// RandomScorer is a placeholder: it draws marks uniformly from
// [0, maxMarks] and a remark uniformly from the canned pool. It never
// inspects the answer's text, image or answer key.
type RandomScorer struct{}

func (RandomScorer) Score(maxMarks int) (int, string) {
	remark := cannedRemarks[rand.IntN(len(cannedRemarks))]
	if maxMarks <= 0 {
		return 0, remark
	}
	return rand.IntN(maxMarks + 1), remark
}
