package service

import (
	"errors"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/repository"
	"skillsetz_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService is the admin-facing side of the question bank.
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	SkillRepo    *repository.SkillRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, skillRepo *repository.SkillRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		SkillRepo:    skillRepo,
	}
}

func (s *QuestionService) Create(q *model.AssessmentQuestion) error {
	if _, err := s.SkillRepo.FindByID(q.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSkillNotFound
		}
		return err
	}
	if q.Points == 0 {
		q.Points = 10
	}
	if q.TimeLimitSeconds == 0 {
		q.TimeLimitSeconds = 120
	}
	return s.QuestionRepo.Create(q)
}

func (s *QuestionService) Get(id uint) (*model.AssessmentQuestion, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Update(q *model.AssessmentQuestion) error {
	return s.QuestionRepo.Update(q)
}

// Deactivate soft-disables a question. Past answers keep referencing
// it, so questions are never hard-deleted.
func (s *QuestionService) Deactivate(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.QuestionRepo.Deactivate(id)
}

func (s *QuestionService) BankSize(skillID uint, level model.DifficultyLevel) (int64, error) {
	return s.QuestionRepo.CountBySkillLevel(skillID, level)
}
