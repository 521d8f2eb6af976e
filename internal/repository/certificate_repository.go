package repository

import (
	"errors"
	"skillsetz_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

// Upsert issues or refreshes the certificate for (user, skill, level).
// Re-passing a level updates the existing row in place so the unique
// triple never duplicates.
func (r *CertificateRepository) Upsert(cert *model.SkillLevelCertificate) error {
	var existing model.SkillLevelCertificate
	err := r.DB.
		Where("user_id = ? AND skill_id = ? AND level = ?", cert.UserID, cert.SkillID, cert.Level).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing.ID == 0 {
		return r.DB.Create(cert).Error
	}
	existing.AssessmentID = cert.AssessmentID
	existing.Score = cert.Score
	existing.IssuedAt = cert.IssuedAt
	existing.IsActive = true
	*cert = existing
	return r.DB.Save(&existing).Error
}

func (r *CertificateRepository) FindByCertificateID(certificateID string) (*model.SkillLevelCertificate, error) {
	var cert model.SkillLevelCertificate
	if err := r.DB.Where("certificate_id = ?", certificateID).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) ListByUser(userID uint) ([]model.SkillLevelCertificate, error) {
	var certs []model.SkillLevelCertificate
	err := r.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) ListByUserSkill(userID, skillID uint) ([]model.SkillLevelCertificate, error) {
	var certs []model.SkillLevelCertificate
	err := r.DB.
		Where("user_id = ? AND skill_id = ? AND is_active = ?", userID, skillID, true).
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) CountActive(userID, skillID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SkillLevelCertificate{}).
		Where("user_id = ? AND skill_id = ? AND is_active = ?", userID, skillID, true).
		Count(&count).Error
	return count, err
}
