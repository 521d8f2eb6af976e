package service

import (
	"skillsetz_backend/internal/model"
	"testing"
)

func question(qt model.QuestionType, correct string, points int) *model.AssessmentQuestion {
	return &model.AssessmentQuestion{
		QuestionType:  qt,
		CorrectAnswer: correct,
		Points:        points,
	}
}

func TestValidateAnswerMultipleChoice(t *testing.T) {
	q := question(model.MultipleChoice, "B", 10)

	cases := []struct {
		answer string
		want   bool
	}{
		{"B", true},
		{"b", true},
		{"  b  ", true},
		{"a", false},
		{"", false},
		{"bb", false},
	}
	for _, tc := range cases {
		correct, points := ValidateAnswer(q, tc.answer)
		if correct != tc.want {
			t.Errorf("answer %q: correct = %v, want %v", tc.answer, correct, tc.want)
		}
		wantPoints := 0.0
		if tc.want {
			wantPoints = 10
		}
		if points != wantPoints {
			t.Errorf("answer %q: points = %v, want %v", tc.answer, points, wantPoints)
		}
	}
}

func TestValidateAnswerTrueFalse(t *testing.T) {
	q := question(model.TrueFalse, "true", 5)

	cases := []struct {
		answer string
		want   bool
	}{
		{"true", true},
		{"TRUE", true},
		{" True ", true},
		{"false", false},
		// No truthy coercion: only the literal spelling counts.
		{"1", false},
		{"yes", false},
		{"t", false},
	}
	for _, tc := range cases {
		if correct, _ := ValidateAnswer(q, tc.answer); correct != tc.want {
			t.Errorf("answer %q: correct = %v, want %v", tc.answer, correct, tc.want)
		}
	}
}

func TestValidateAnswerCodeSnippet(t *testing.T) {
	q := question(model.CodeSnippet, "fmt.Println(x)", 15)

	if correct, points := ValidateAnswer(q, "  FMT.PRINTLN(X) "); !correct || points != 15 {
		t.Errorf("normalized exact match should pass, got correct=%v points=%v", correct, points)
	}
	if correct, _ := ValidateAnswer(q, "fmt.Println(y)"); correct {
		t.Error("different code must not match")
	}
	if correct, _ := ValidateAnswer(q, "x := 1; fmt.Println(x)"); correct {
		t.Error("code match is exact, not containment")
	}
}

func TestValidateAnswerScenario(t *testing.T) {
	q := question(model.Scenario, "rollback", 20)

	if correct, _ := ValidateAnswer(q, "I would ROLLBACK the deployment and investigate"); !correct {
		t.Error("submission containing the key phrase should pass")
	}
	if correct, _ := ValidateAnswer(q, "restart the service"); correct {
		t.Error("submission without the key phrase must fail")
	}
	// Containment runs against the submission, not the other way round.
	if correct, _ := ValidateAnswer(q, "roll"); correct {
		t.Error("partial key phrase must not pass")
	}
}

func TestValidateAnswerUnknownType(t *testing.T) {
	q := question(model.QuestionType("ESSAY"), "anything", 10)
	if correct, points := ValidateAnswer(q, "anything"); correct || points != 0 {
		t.Errorf("unknown type must never score, got correct=%v points=%v", correct, points)
	}
}
