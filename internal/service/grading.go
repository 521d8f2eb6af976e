package service

import (
	"skillsetz_backend/internal/model"
	"strings"
)

// ValidateAnswer grades a submitted answer against the question's
// correct answer. Both sides are trimmed and lowercased before
// comparison. There is no partial credit; a correct answer earns the
// question's full point value.
func ValidateAnswer(question *model.AssessmentQuestion, userAnswer string) (bool, float64) {
	correct := strings.ToLower(strings.TrimSpace(question.CorrectAnswer))
	submitted := strings.ToLower(strings.TrimSpace(userAnswer))

	var isCorrect bool
	switch question.QuestionType {
	case model.MultipleChoice, model.CodeSnippet:
		isCorrect = submitted == correct
	case model.TrueFalse:
		// Literal "true"/"false" comparison. No coercion of "1",
		// "yes" or other truthy spellings.
		isCorrect = submitted == correct
	case model.Scenario:
		// The submission must contain the expected key phrase.
		isCorrect = strings.Contains(submitted, correct)
	}

	if isCorrect {
		return true, float64(question.Points)
	}
	return false, 0
}
