package repository

import (
	"errors"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Create inserts the attempt, failing with ErrAttemptInProgress when an
// IN_PROGRESS row already exists for the same (user, skill, level). The
// check and insert run in one transaction so concurrent creates
// serialize.
func (r *AssessmentRepository) Create(a *model.SkillAssessment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.SkillAssessment{}).
			Where("user_id = ? AND skill_id = ? AND level = ? AND status = ?",
				a.UserID, a.SkillID, a.Level, model.StatusInProgress).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return util.ErrAttemptInProgress
		}
		return tx.Create(a).Error
	})
}

func (r *AssessmentRepository) Save(a *model.SkillAssessment) error {
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.SkillAssessment, error) {
	var a model.SkillAssessment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// LatestByUserSkillLevel returns the most recent attempt at the level,
// or (nil, nil) when the user has never attempted it.
func (r *AssessmentRepository) LatestByUserSkillLevel(userID, skillID uint, level model.DifficultyLevel) (*model.SkillAssessment, error) {
	var a model.SkillAssessment
	err := r.DB.
		Where("user_id = ? AND skill_id = ? AND level = ?", userID, skillID, level).
		Order("attempt_number DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) HasPassed(userID, skillID uint, level model.DifficultyLevel) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SkillAssessment{}).
		Where("user_id = ? AND skill_id = ? AND level = ? AND status = ?",
			userID, skillID, level, model.StatusPassed).
		Count(&count).Error
	return count > 0, err
}

func (r *AssessmentRepository) ListByUserSkill(userID, skillID uint) ([]model.SkillAssessment, error) {
	var list []model.SkillAssessment
	err := r.DB.
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("started_at DESC").
		Find(&list).Error
	return list, err
}

func (r *AssessmentRepository) ListByUser(userID uint) ([]model.SkillAssessment, error) {
	var list []model.SkillAssessment
	err := r.DB.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&list).Error
	return list, err
}

// UpsertAnswer records the answer for (assessment, question),
// overwriting any previous submission for the same question.
func (r *AssessmentRepository) UpsertAnswer(ans *model.AssessmentAnswer) error {
	var existing model.AssessmentAnswer
	err := r.DB.
		Where("assessment_id = ? AND question_id = ?", ans.AssessmentID, ans.QuestionID).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing.ID == 0 {
		return r.DB.Create(ans).Error
	}
	existing.UserAnswer = ans.UserAnswer
	existing.IsCorrect = ans.IsCorrect
	existing.PointsEarned = ans.PointsEarned
	existing.TimeTakenSeconds = ans.TimeTakenSeconds
	*ans = existing
	return r.DB.Save(&existing).Error
}

func (r *AssessmentRepository) AnswersByAssessment(assessmentID uint) ([]model.AssessmentAnswer, error) {
	var answers []model.AssessmentAnswer
	err := r.DB.Where("assessment_id = ?", assessmentID).Find(&answers).Error
	return answers, err
}
