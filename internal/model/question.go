package model

import "encoding/json"

type QuestionType string

const (
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TrueFalse      QuestionType = "TRUE_FALSE"
	CodeSnippet    QuestionType = "CODE_SNIPPET"
	Scenario       QuestionType = "SCENARIO"
)

// DifficultyLevel is one of the five assessment levels of a skill.
// Levels form a strict total order; level n is gated behind a passed
// attempt at level n-1.
type DifficultyLevel string

const (
	Level1 DifficultyLevel = "LEVEL_1"
	Level2 DifficultyLevel = "LEVEL_2"
	Level3 DifficultyLevel = "LEVEL_3"
	Level4 DifficultyLevel = "LEVEL_4"
	Level5 DifficultyLevel = "LEVEL_5"
)

// Levels lists every difficulty level in ascending order.
var Levels = [5]DifficultyLevel{Level1, Level2, Level3, Level4, Level5}

// Order returns the 1-based position of the level, or 0 if unknown.
func (l DifficultyLevel) Order() int {
	for i, lv := range Levels {
		if lv == l {
			return i + 1
		}
	}
	return 0
}

// Tier maps the level to the proficiency tier it certifies. Levels 4
// and 5 both certify EXPERT.
func (l DifficultyLevel) Tier() Proficiency {
	switch l {
	case Level1:
		return Beginner
	case Level2:
		return Intermediate
	case Level3:
		return Advanced
	case Level4, Level5:
		return Expert
	}
	return Intermediate
}

// LevelByOrder returns the level at the given 1-based position.
func LevelByOrder(n int) (DifficultyLevel, bool) {
	if n < 1 || n > len(Levels) {
		return "", false
	}
	return Levels[n-1], true
}

// AssessmentQuestion is a pre-built question from the imported bank.
// Questions are soft-disabled via IsActive rather than deleted, since
// historical answers reference them.
//
// swagger:model AssessmentQuestion
type AssessmentQuestion struct {
	BaseModel
	SkillID          uint            `gorm:"index:idx_skill_level;type:bigint unsigned" json:"skillId"`
	Level            DifficultyLevel `gorm:"size:20;index:idx_skill_level" json:"level"`
	QuestionType     QuestionType    `gorm:"size:20;not null" json:"questionType"`
	QuestionText     string          `gorm:"type:text;not null" json:"questionText"`
	CodeSnippet      string          `gorm:"type:text" json:"codeSnippet,omitempty"`
	Options          json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer    string          `gorm:"type:text;not null" json:"-"`
	Explanation      string          `gorm:"type:text" json:"-"`
	Points           int             `gorm:"default:10" json:"points"`
	TimeLimitSeconds int             `gorm:"default:120" json:"timeLimitSeconds"`
	IsActive         bool            `gorm:"default:true;index" json:"isActive"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}
