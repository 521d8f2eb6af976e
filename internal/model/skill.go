package model

import "time"

type SkillType string

const (
	SkillTechnical SkillType = "TECHNICAL"
	SkillSoft      SkillType = "SOFT"
	SkillLanguage  SkillType = "LANGUAGE"
	SkillTool      SkillType = "TOOL"
	SkillFramework SkillType = "FRAMEWORK"
	SkillDomain    SkillType = "DOMAIN"
)

// Proficiency is the coarse tier recorded on a user's skill. It is
// distinct from the five assessment levels; see DifficultyLevel.Tier.
type Proficiency string

const (
	Beginner     Proficiency = "BEGINNER"
	Intermediate Proficiency = "INTERMEDIATE"
	Advanced     Proficiency = "ADVANCED"
	Expert       Proficiency = "EXPERT"
)

// Rank returns the position of the tier in the fixed order
// BEGINNER < INTERMEDIATE < ADVANCED < EXPERT. Unknown tiers rank 0.
func (p Proficiency) Rank() int {
	switch p {
	case Beginner:
		return 1
	case Intermediate:
		return 2
	case Advanced:
		return 3
	case Expert:
		return 4
	}
	return 0
}

// Outranks reports whether p is a strictly higher tier than other.
func (p Proficiency) Outranks(other Proficiency) bool {
	return p.Rank() > other.Rank()
}

// swagger:model SkillCategory
type SkillCategory struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ParentID    *uint  `gorm:"type:bigint unsigned" json:"parentId,omitempty"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}

// swagger:model Skill
type Skill struct {
	BaseModel
	Name        string    `gorm:"size:255;unique;not null;index" json:"name"`
	CategoryID  *uint     `gorm:"type:bigint unsigned" json:"categoryId,omitempty"`
	SkillType   SkillType `gorm:"size:20;default:'TECHNICAL'" json:"skillType"`
	Description string    `gorm:"type:text" json:"description"`
	IsVerified  bool      `gorm:"default:false" json:"isVerified"`
	UsageCount  int       `gorm:"default:0" json:"usageCount"`
}

func (Skill) TableName() string {
	return "skills"
}

// UserSkill links a profile to a skill with a proficiency tier. The tier
// is only ever raised by certification, never lowered.
//
// swagger:model UserSkill
type UserSkill struct {
	BaseModel
	ProfileID         uint        `gorm:"uniqueIndex:idx_profile_skill;type:bigint unsigned" json:"profileId"`
	SkillID           uint        `gorm:"uniqueIndex:idx_profile_skill;type:bigint unsigned" json:"skillId"`
	Proficiency       Proficiency `gorm:"size:20;default:'INTERMEDIATE'" json:"proficiency"`
	YearsOfExperience float64     `gorm:"type:decimal(4,1);default:0" json:"yearsOfExperience"`
	IsVerified        bool        `gorm:"default:false" json:"isVerified"`
	VerifiedBy        string      `gorm:"size:255" json:"verifiedBy"`
	LastUsed          *time.Time  `json:"lastUsed,omitempty"`
	Notes             string      `gorm:"type:text" json:"notes"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}
