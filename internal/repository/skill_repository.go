package repository

import (
	"errors"
	"skillsetz_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.DB.Save(skill).Error
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.DB.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) FindByName(name string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.DB.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetOrCreateByName resolves a skill by exact name, creating it with
// the given type when missing.
func (r *SkillRepository) GetOrCreateByName(name string, skillType model.SkillType) (*model.Skill, error) {
	skill, err := r.FindByName(name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	skill = &model.Skill{Name: name, SkillType: skillType}
	if err := r.DB.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

func (r *SkillRepository) List(categoryID *uint, search string, page, limit int) ([]model.Skill, int64, error) {
	query := r.DB.Model(&model.Skill{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []model.Skill
	err := query.Order("usage_count DESC, name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&skills).Error
	return skills, total, err
}

func (r *SkillRepository) IncrementUsage(skillID uint) error {
	return r.DB.Model(&model.Skill{}).
		Where("id = ?", skillID).
		Update("usage_count", gorm.Expr("usage_count + 1")).
		Error
}

func (r *SkillRepository) ListCategories() ([]model.SkillCategory, error) {
	var categories []model.SkillCategory
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *SkillRepository) CreateCategory(category *model.SkillCategory) error {
	return r.DB.Create(category).Error
}

func (r *SkillRepository) FindUserSkill(profileID, skillID uint) (*model.UserSkill, error) {
	var us model.UserSkill
	if err := r.DB.Where("profile_id = ? AND skill_id = ?", profileID, skillID).First(&us).Error; err != nil {
		return nil, err
	}
	return &us, nil
}

func (r *SkillRepository) ListUserSkills(profileID uint) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	err := r.DB.Where("profile_id = ?", profileID).Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) CreateUserSkill(us *model.UserSkill) error {
	return r.DB.Create(us).Error
}

func (r *SkillRepository) SaveUserSkill(us *model.UserSkill) error {
	return r.DB.Save(us).Error
}

func (r *SkillRepository) DeleteUserSkill(profileID, skillID uint) error {
	return r.DB.Where("profile_id = ? AND skill_id = ?", profileID, skillID).
		Delete(&model.UserSkill{}).Error
}
