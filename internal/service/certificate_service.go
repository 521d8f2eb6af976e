package service

import (
	"errors"
	"fmt"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/util"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateStore persists issued level certificates.
type CertificateStore interface {
	Upsert(cert *model.SkillLevelCertificate) error
	FindByCertificateID(certificateID string) (*model.SkillLevelCertificate, error)
	ListByUser(userID uint) ([]model.SkillLevelCertificate, error)
	ListByUserSkill(userID, skillID uint) ([]model.SkillLevelCertificate, error)
	CountActive(userID, skillID uint) (int64, error)
}

// SkillDirectory resolves skills for certificate codes.
type SkillDirectory interface {
	FindByID(id uint) (*model.Skill, error)
}

// ProfileStore resolves the profile a promoted skill hangs off.
type ProfileStore interface {
	FindProfileByUserID(userID uint) (*model.UserProfile, error)
}

// UserSkillStore reads and writes profile skill rows.
type UserSkillStore interface {
	FindUserSkill(profileID, skillID uint) (*model.UserSkill, error)
	CreateUserSkill(us *model.UserSkill) error
	SaveUserSkill(us *model.UserSkill) error
}

type CertificateService struct {
	certificates CertificateStore
	skills       SkillDirectory
	profiles     ProfileStore
	userSkills   UserSkillStore

	now func() time.Time
}

func NewCertificateService(
	certificates CertificateStore,
	skills SkillDirectory,
	profiles ProfileStore,
	userSkills UserSkillStore,
) *CertificateService {
	return &CertificateService{
		certificates: certificates,
		skills:       skills,
		profiles:     profiles,
		userSkills:   userSkills,
		now:          time.Now,
	}
}

// Award runs the full post-pass pipeline: issue (or refresh) the level
// certificate and promote the user's skill record.
func (s *CertificateService) Award(assessment *model.SkillAssessment) (*model.SkillLevelCertificate, error) {
	cert, err := s.AwardCertificate(assessment)
	if err != nil {
		return nil, err
	}
	if _, err := s.PromoteUserSkill(assessment.UserID, assessment.SkillID, assessment.Level); err != nil {
		return nil, err
	}
	return cert, nil
}

// AwardCertificate issues the certificate for a PASSED assessment. One
// certificate exists per (user, skill, level); re-passing refreshes it
// with the new assessment, score and issue time.
func (s *CertificateService) AwardCertificate(assessment *model.SkillAssessment) (*model.SkillLevelCertificate, error) {
	if assessment.Status != model.StatusPassed {
		return nil, util.ErrNotPassed
	}

	skill, err := s.skills.FindByID(assessment.SkillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	cert := &model.SkillLevelCertificate{
		UserID:        assessment.UserID,
		SkillID:       assessment.SkillID,
		Level:         assessment.Level,
		AssessmentID:  assessment.ID,
		CertificateID: CertificateCode(skill.Name, assessment.Level),
		Score:         assessment.PercentageScore,
		IssuedAt:      s.now(),
		IsActive:      true,
	}
	if err := s.certificates.Upsert(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// CertificateCode builds a verifiable public certificate ID:
// SSZ-<first 3 skill chars>-<level>-<8 hex chars>.
func CertificateCode(skillName string, level model.DifficultyLevel) string {
	code := strings.ToUpper(skillName)
	// Truncate by runes so multibyte skill names stay valid UTF-8.
	if r := []rune(code); len(r) > 3 {
		code = string(r[:3])
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("SSZ-%s-%s-%s", code, level, suffix)
}

// PromoteUserSkill upgrades the user's skill record after a pass. The
// proficiency tier only ever moves up; the verified flag and the
// provenance string refresh on every pass.
func (s *CertificateService) PromoteUserSkill(userID, skillID uint, level model.DifficultyLevel) (*model.UserSkill, error) {
	profile, err := s.profiles.FindProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoProfile
		}
		return nil, err
	}

	tier := level.Tier()
	provenance := fmt.Sprintf("SkillSetz Assessment - %s", level)

	userSkill, err := s.userSkills.FindUserSkill(profile.ID, skillID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		userSkill = &model.UserSkill{
			ProfileID:   profile.ID,
			SkillID:     skillID,
			Proficiency: tier,
			IsVerified:  true,
			VerifiedBy:  provenance,
		}
		if err := s.userSkills.CreateUserSkill(userSkill); err != nil {
			return nil, err
		}
		return userSkill, nil
	}

	if tier.Outranks(userSkill.Proficiency) {
		userSkill.Proficiency = tier
	}
	userSkill.IsVerified = true
	userSkill.VerifiedBy = provenance

	if err := s.userSkills.SaveUserSkill(userSkill); err != nil {
		return nil, err
	}
	return userSkill, nil
}

// Verify resolves a certificate by its public ID.
func (s *CertificateService) Verify(certificateID string) (*model.SkillLevelCertificate, error) {
	cert, err := s.certificates.FindByCertificateID(certificateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

// UserCertificates lists the user's active certificates, newest first.
func (s *CertificateService) UserCertificates(userID uint) ([]model.SkillLevelCertificate, error) {
	return s.certificates.ListByUser(userID)
}
