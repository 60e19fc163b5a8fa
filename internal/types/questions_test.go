package types

import (
	"fmt"
	"testing"
)

func TestAppendQuestionsUnderLimit(t *testing.T) {
	got := AppendQuestions([]string{"q1", "q2"}, []string{"q3"})
	want := []string{"q1", "q2", "q3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAppendQuestionsTruncatesToNewest(t *testing.T) {
	existing := make([]string, QuestionHistoryLimit)
	for i := range existing {
		existing[i] = fmt.Sprintf("q%d", i+1)
	}

	got := AppendQuestions(existing, []string{"q11", "q12"})
	if len(got) != QuestionHistoryLimit {
		t.Fatalf("expected %d questions, got %d", QuestionHistoryLimit, len(got))
	}
	if got[0] != "q3" {
		t.Fatalf("expected oldest survivor q3, got %q", got[0])
	}
	if got[len(got)-1] != "q12" {
		t.Fatalf("expected newest q12 last, got %q", got[len(got)-1])
	}
}

func TestAppendQuestionsNoDedup(t *testing.T) {
	got := AppendQuestions([]string{"q1"}, []string{"q1", "q1"})
	if len(got) != 3 {
		t.Fatalf("expected duplicates kept, got %v", got)
	}
}

func TestAppendQuestionsEmptyInputs(t *testing.T) {
	if got := AppendQuestions(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	got := AppendQuestions(nil, []string{"q1"})
	if len(got) != 1 || got[0] != "q1" {
		t.Fatalf("expected [q1], got %v", got)
	}
}
