package types

// QuestionHistoryLimit bounds the quiz-question history kept per document.
const QuestionHistoryLimit = 10

// AppendQuestions concatenates existing and incoming questions (existing
// first, order preserved) and keeps only the newest QuestionHistoryLimit
// entries, dropping from the front. No deduplication: repeating a call
// shifts the window again.
func AppendQuestions(existing, incoming []string) []string {
	combined := make([]string, 0, len(existing)+len(incoming))
	combined = append(combined, existing...)
	combined = append(combined, incoming...)
	if len(combined) > QuestionHistoryLimit {
		combined = combined[len(combined)-QuestionHistoryLimit:]
	}
	return combined
}
