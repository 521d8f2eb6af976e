package service

import (
	"encoding/json"
	"fmt"
	"os"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/repository"
	"skillsetz_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuestionImport is one entry of a JSON question bank file.
type QuestionImport struct {
	Skill            string          `json:"skill"`
	Level            string          `json:"level"`
	QuestionType     string          `json:"question_type"`
	QuestionText     string          `json:"question_text"`
	CodeSnippet      string          `json:"code_snippet"`
	Options          json.RawMessage `json:"options"`
	CorrectAnswer    string          `json:"correct_answer"`
	Explanation      string          `json:"explanation"`
	Points           *int            `json:"points"`
	TimeLimitSeconds *int            `json:"time_limit_seconds"`
	IsActive         *bool           `json:"is_active"`
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type QuestionImportService struct {
	SkillRepo    *repository.SkillRepository
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionImportService(skillRepo *repository.SkillRepository, questionRepo *repository.QuestionRepository) *QuestionImportService {
	return &QuestionImportService{
		SkillRepo:    skillRepo,
		QuestionRepo: questionRepo,
	}
}

// ImportFile loads a JSON question bank from disk and imports it.
func (s *QuestionImportService) ImportFile(path string) (*ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []QuestionImport
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("invalid question bank file: %w", err)
	}
	return s.Import(items)
}

// Import creates missing skills on demand and inserts questions,
// skipping entries whose (skill, level, text) already exists.
func (s *QuestionImportService) Import(items []QuestionImport) (*ImportResult, error) {
	result := &ImportResult{}

	for _, item := range items {
		q, err := s.buildQuestion(item)
		if err != nil {
			logger.Log.Warn("Skipping invalid question", zap.Error(err))
			result.Failed++
			continue
		}

		exists, err := s.QuestionRepo.ExistsDuplicate(q.SkillID, q.Level, q.QuestionText)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := s.QuestionRepo.Create(q); err != nil {
			logger.Log.Error("Failed to create question", zap.Error(err))
			result.Failed++
			continue
		}
		result.Created++
	}

	logger.Log.Info("Question import finished",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *QuestionImportService) buildQuestion(item QuestionImport) (*model.AssessmentQuestion, error) {
	if item.Skill == "" {
		return nil, fmt.Errorf("question has no skill name")
	}
	level := model.DifficultyLevel(item.Level)
	if level.Order() == 0 {
		return nil, fmt.Errorf("unknown level %q for skill %s", item.Level, item.Skill)
	}
	switch model.QuestionType(item.QuestionType) {
	case model.MultipleChoice, model.TrueFalse, model.CodeSnippet, model.Scenario:
	default:
		return nil, fmt.Errorf("unknown question type %q for skill %s", item.QuestionType, item.Skill)
	}
	if item.QuestionText == "" || item.CorrectAnswer == "" {
		return nil, fmt.Errorf("question for skill %s is missing text or answer", item.Skill)
	}

	skill, err := s.SkillRepo.GetOrCreateByName(item.Skill, model.SkillTechnical)
	if err != nil {
		return nil, err
	}

	q := &model.AssessmentQuestion{
		SkillID:          skill.ID,
		Level:            level,
		QuestionType:     model.QuestionType(item.QuestionType),
		QuestionText:     item.QuestionText,
		CodeSnippet:      item.CodeSnippet,
		Options:          item.Options,
		CorrectAnswer:    item.CorrectAnswer,
		Explanation:      item.Explanation,
		Points:           10,
		TimeLimitSeconds: 120,
		IsActive:         true,
	}
	if item.Points != nil {
		q.Points = *item.Points
	}
	if item.TimeLimitSeconds != nil {
		q.TimeLimitSeconds = *item.TimeLimitSeconds
	}
	if item.IsActive != nil {
		q.IsActive = *item.IsActive
	}
	return q, nil
}
