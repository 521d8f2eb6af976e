package model

import (
	"encoding/json"
	"time"
)

type AssessmentStatus string

const (
	StatusInProgress AssessmentStatus = "IN_PROGRESS"
	StatusPassed     AssessmentStatus = "PASSED"
	StatusFailed     AssessmentStatus = "FAILED"
	StatusExpired    AssessmentStatus = "EXPIRED"
)

// Terminal reports whether the status can no longer change. Everything
// except IN_PROGRESS is terminal.
func (s AssessmentStatus) Terminal() bool {
	return s != StatusInProgress
}

// SkillAssessment is a single timed attempt at one level of one skill.
// Aggregate columns (QuestionsAnswered, Score, TimeTakenSeconds) are
// recomputed from the answer rows on every submission, never
// incremented.
//
// swagger:model SkillAssessment
type SkillAssessment struct {
	BaseModel
	UserID               uint             `gorm:"index:idx_user_skill_level;type:bigint unsigned;not null" json:"userId"`
	SkillID              uint             `gorm:"index:idx_user_skill_level;type:bigint unsigned;not null" json:"skillId"`
	Level                DifficultyLevel  `gorm:"size:20;index:idx_user_skill_level;not null" json:"level"`
	Status               AssessmentStatus `gorm:"size:20;default:'IN_PROGRESS';index" json:"status"`
	SelectedQuestionIDs  string           `gorm:"type:json" json:"-"`
	TotalQuestions       int              `gorm:"default:0" json:"totalQuestions"`
	QuestionsAnswered    int              `gorm:"default:0" json:"questionsAnswered"`
	Score                float64          `gorm:"type:decimal(7,2);default:0" json:"score"`
	TotalPoints          float64          `gorm:"type:decimal(7,2);default:0" json:"totalPoints"`
	PercentageScore      float64          `gorm:"type:decimal(5,2);default:0" json:"percentageScore"`
	PassingScore         float64          `gorm:"type:decimal(5,2);default:70" json:"passingScore"`
	StartedAt            time.Time        `gorm:"not null" json:"startedAt"`
	ExpiresAt            time.Time        `gorm:"not null" json:"expiresAt"`
	CompletedAt          *time.Time       `json:"completedAt,omitempty"`
	TimeTakenSeconds     int              `gorm:"default:0" json:"timeTakenSeconds"`
	AttemptNumber        int              `gorm:"default:1" json:"attemptNumber"`
	PreviousAssessmentID *uint            `gorm:"type:bigint unsigned" json:"previousAssessmentId,omitempty"`
}

func (SkillAssessment) TableName() string {
	return "skill_assessments"
}

// QuestionIDs decodes the frozen question set chosen at creation.
func (a *SkillAssessment) QuestionIDs() ([]uint, error) {
	if a.SelectedQuestionIDs == "" {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(a.SelectedQuestionIDs), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetQuestionIDs freezes the selected question set on the attempt.
func (a *SkillAssessment) SetQuestionIDs(ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	a.SelectedQuestionIDs = string(raw)
	return nil
}

// AssessmentAnswer is the recorded answer for one question of one
// attempt. Resubmitting the same question overwrites this row.
//
// swagger:model AssessmentAnswer
type AssessmentAnswer struct {
	BaseModel
	AssessmentID     uint    `gorm:"uniqueIndex:idx_assessment_question;type:bigint unsigned;not null" json:"assessmentId"`
	QuestionID       uint    `gorm:"uniqueIndex:idx_assessment_question;type:bigint unsigned;not null" json:"questionId"`
	UserAnswer       string  `gorm:"type:text" json:"userAnswer"`
	IsCorrect        bool    `gorm:"default:false" json:"isCorrect"`
	PointsEarned     float64 `gorm:"type:decimal(7,2);default:0" json:"pointsEarned"`
	TimeTakenSeconds int     `gorm:"default:0" json:"timeTakenSeconds"`
}

func (AssessmentAnswer) TableName() string {
	return "assessment_answers"
}
