package service

import "testing"

func TestRandomScorerBounds(t *testing.T) {
	tests := []struct {
		name     string
		maxMarks int
	}{
		{name: "zero max always zero", maxMarks: 0},
		{name: "negative max treated as zero", maxMarks: -3},
		{name: "single mark", maxMarks: 1},
		{name: "typical question", maxMarks: 5},
		{name: "large question", maxMarks: 10},
	}

	scorer := RandomScorer{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upper := tc.maxMarks
			if upper < 0 {
				upper = 0
			}
			for i := 0; i < 500; i++ {
				marks, remark := scorer.Score(tc.maxMarks)
				if marks < 0 || marks > upper {
					t.Fatalf("marks %d out of range [0, %d]", marks, upper)
				}
				if remark == "" {
					t.Fatalf("expected a remark, got empty string")
				}
			}
		})
	}
}

func TestRandomScorerSingleMarkCoversBothValues(t *testing.T) {
	scorer := RandomScorer{}
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		marks, _ := scorer.Score(1)
		seen[marks] = true
	}
	if !seen[0] || !seen[1] {
		t.Fatalf("expected both 0 and 1 within 500 draws, got %v", seen)
	}
}

func TestRandomScorerRemarkFromCannedPool(t *testing.T) {
	pool := make(map[string]bool, len(cannedRemarks))
	for _, r := range cannedRemarks {
		pool[r] = true
	}

	scorer := RandomScorer{}
	for i := 0; i < 200; i++ {
		_, remark := scorer.Score(10)
		if !pool[remark] {
			t.Fatalf("remark %q not in the canned pool", remark)
		}
	}
}
