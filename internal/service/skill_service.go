package service

import (
	"errors"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/repository"
	"skillsetz_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type SkillService struct {
	SkillRepo *repository.SkillRepository
	UserRepo  *repository.UserRepository
}

func NewSkillService(skillRepo *repository.SkillRepository, userRepo *repository.UserRepository) *SkillService {
	return &SkillService{
		SkillRepo: skillRepo,
		UserRepo:  userRepo,
	}
}

func (s *SkillService) CreateSkill(skill *model.Skill) error {
	if skill.SkillType == "" {
		skill.SkillType = model.SkillTechnical
	}
	return s.SkillRepo.Create(skill)
}

func (s *SkillService) GetSkill(id uint) (*model.Skill, error) {
	skill, err := s.SkillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) ListSkills(categoryID *uint, search string, page, limit int) ([]model.Skill, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.SkillRepo.List(categoryID, search, page, limit)
}

func (s *SkillService) ListCategories() ([]model.SkillCategory, error) {
	return s.SkillRepo.ListCategories()
}

func (s *SkillService) CreateCategory(category *model.SkillCategory) error {
	return s.SkillRepo.CreateCategory(category)
}

type AttachSkillInput struct {
	SkillID           uint
	Proficiency       model.Proficiency
	YearsOfExperience float64
	LastUsed          *time.Time
	Notes             string
}

// AttachSkill adds a skill to the user's profile as a self-declared
// (unverified) entry. Verification only ever comes from a passed
// assessment.
func (s *SkillService) AttachSkill(userID uint, input AttachSkillInput) (*model.UserSkill, error) {
	profile, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetSkill(input.SkillID); err != nil {
		return nil, err
	}

	proficiency := input.Proficiency
	if proficiency.Rank() == 0 {
		proficiency = model.Intermediate
	}

	existing, err := s.SkillRepo.FindUserSkill(profile.ID, input.SkillID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != 0 {
		// Self-declared edits never raise a verified tier or clear the
		// verified flag.
		if !existing.IsVerified {
			existing.Proficiency = proficiency
		}
		existing.YearsOfExperience = input.YearsOfExperience
		existing.LastUsed = input.LastUsed
		existing.Notes = input.Notes
		if err := s.SkillRepo.SaveUserSkill(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	userSkill := &model.UserSkill{
		ProfileID:         profile.ID,
		SkillID:           input.SkillID,
		Proficiency:       proficiency,
		YearsOfExperience: input.YearsOfExperience,
		LastUsed:          input.LastUsed,
		Notes:             input.Notes,
	}
	if err := s.SkillRepo.CreateUserSkill(userSkill); err != nil {
		return nil, err
	}
	s.SkillRepo.IncrementUsage(input.SkillID)
	return userSkill, nil
}

func (s *SkillService) ListUserSkills(userID uint) ([]model.UserSkill, error) {
	profile, err := s.UserRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.UserSkill{}, nil
		}
		return nil, err
	}
	return s.SkillRepo.ListUserSkills(profile.ID)
}

func (s *SkillService) DetachSkill(userID, skillID uint) error {
	profile, err := s.UserRepo.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoProfile
		}
		return err
	}
	return s.SkillRepo.DeleteUserSkill(profile.ID, skillID)
}
