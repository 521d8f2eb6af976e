package model

import "time"

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('member','admin');default:'member'" json:"role"`
	Language  string    `gorm:"size:10;default:'en'" json:"language"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile carries the career-facing details of a user. Skill
// verification records hang off the profile, not the user row.
//
// swagger:model UserProfile
type UserProfile struct {
	BaseModel
	UserID            uint    `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	Bio               string  `gorm:"type:text" json:"bio"`
	CurrentTitle      string  `gorm:"size:255" json:"currentTitle"`
	CurrentCompany    string  `gorm:"size:255" json:"currentCompany"`
	YearsOfExperience float64 `gorm:"type:decimal(4,1);default:0" json:"yearsOfExperience"`
	LinkedinURL       string  `gorm:"size:255" json:"linkedinUrl"`
	GithubURL         string  `gorm:"size:255" json:"githubUrl"`
	PortfolioURL      string  `gorm:"size:255" json:"portfolioUrl"`
	ResumeURL         string  `gorm:"size:255" json:"resumeUrl"`
	ResumeText        string  `gorm:"type:text" json:"-"`
	CareerGoal        string  `gorm:"type:text" json:"careerGoal"`
	Industry          string  `gorm:"size:100" json:"industry"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
