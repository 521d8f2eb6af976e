package model

import "time"

// SkillLevelCertificate records a passed assessment level. One row per
// (user, skill, level); re-passing the same level refreshes the row
// instead of stacking duplicates.
//
// swagger:model SkillLevelCertificate
type SkillLevelCertificate struct {
	BaseModel
	UserID        uint            `gorm:"uniqueIndex:idx_user_skill_level_cert;type:bigint unsigned;not null" json:"userId"`
	SkillID       uint            `gorm:"uniqueIndex:idx_user_skill_level_cert;type:bigint unsigned;not null" json:"skillId"`
	Level         DifficultyLevel `gorm:"size:20;uniqueIndex:idx_user_skill_level_cert;not null" json:"level"`
	AssessmentID  uint            `gorm:"type:bigint unsigned;not null" json:"assessmentId"`
	CertificateID string          `gorm:"size:64;uniqueIndex;not null" json:"certificateId"`
	Score         float64         `gorm:"type:decimal(5,2);not null" json:"score"`
	IssuedAt      time.Time       `gorm:"not null" json:"issuedAt"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`
}

func (SkillLevelCertificate) TableName() string {
	return "skill_level_certificates"
}
