package repository

import (
	"skillsetz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.AssessmentQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) Update(q *model.AssessmentQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.AssessmentQuestion, error) {
	var q model.AssessmentQuestion
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// ActiveBySkillLevel returns every active question in the bank for the
// (skill, level) pair. The caller samples from it.
func (r *QuestionRepository) ActiveBySkillLevel(skillID uint, level model.DifficultyLevel) ([]model.AssessmentQuestion, error) {
	var questions []model.AssessmentQuestion
	err := r.DB.
		Where("skill_id = ? AND level = ? AND is_active = ?", skillID, level, true).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.AssessmentQuestion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.AssessmentQuestion
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountBySkillLevel(skillID uint, level model.DifficultyLevel) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentQuestion{}).
		Where("skill_id = ? AND level = ? AND is_active = ?", skillID, level, true).
		Count(&count).Error
	return count, err
}

// ExistsDuplicate reports whether the bank already has this exact
// question text for the (skill, level) pair. Used by the importer.
func (r *QuestionRepository) ExistsDuplicate(skillID uint, level model.DifficultyLevel, questionText string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentQuestion{}).
		Where("skill_id = ? AND level = ? AND question_text = ?", skillID, level, questionText).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) Deactivate(id uint) error {
	return r.DB.Model(&model.AssessmentQuestion{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
