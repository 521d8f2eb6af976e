package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	// QuestionsPerLevel is the fixed size of every assessment.
	QuestionsPerLevel = 20
	// PassingPercentage is the minimum percentage score to pass.
	PassingPercentage = 70.00
	// TimeLimit is how long an attempt stays open after starting.
	TimeLimit = 2 * time.Hour

	progressCacheTTL = 5 * time.Minute
)

// QuestionPool reads from the question bank.
type QuestionPool interface {
	ActiveBySkillLevel(skillID uint, level model.DifficultyLevel) ([]model.AssessmentQuestion, error)
	FindByID(id uint) (*model.AssessmentQuestion, error)
	FindByIDs(ids []uint) ([]model.AssessmentQuestion, error)
}

// AssessmentStore persists attempts and their answers. Create must
// fail with util.ErrAttemptInProgress when an IN_PROGRESS attempt
// already exists for the same (user, skill, level).
type AssessmentStore interface {
	Create(a *model.SkillAssessment) error
	Save(a *model.SkillAssessment) error
	FindByID(id uint) (*model.SkillAssessment, error)
	LatestByUserSkillLevel(userID, skillID uint, level model.DifficultyLevel) (*model.SkillAssessment, error)
	HasPassed(userID, skillID uint, level model.DifficultyLevel) (bool, error)
	ListByUserSkill(userID, skillID uint) ([]model.SkillAssessment, error)
	ListByUser(userID uint) ([]model.SkillAssessment, error)
	UpsertAnswer(ans *model.AssessmentAnswer) error
	AnswersByAssessment(assessmentID uint) ([]model.AssessmentAnswer, error)
}

// CertificateCounter is the slice of the certificate store the
// progress report needs.
type CertificateCounter interface {
	CountActive(userID, skillID uint) (int64, error)
}

type AssessmentService struct {
	assessments AssessmentStore
	questions   QuestionPool
	certCounts  CertificateCounter
	certService *CertificateService
	cache       *redis.Client

	now func() time.Time
	rng *rand.Rand
}

func NewAssessmentService(
	assessments AssessmentStore,
	questions QuestionPool,
	certCounts CertificateCounter,
	certService *CertificateService,
	cache *redis.Client,
) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		questions:   questions,
		certCounts:  certCounts,
		certService: certService,
		cache:       cache,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CanAttempt reports whether the user may start the level, with a
// human-readable reason. Level 1 is always open; every other level
// requires a passed attempt at the level below it.
func (s *AssessmentService) CanAttempt(userID, skillID uint, level model.DifficultyLevel) (bool, string, error) {
	if level == model.Level1 {
		return true, "LEVEL_1 is always available", nil
	}

	prev, ok := model.LevelByOrder(level.Order() - 1)
	if !ok {
		return false, fmt.Sprintf("unknown level %s", level), nil
	}

	passed, err := s.assessments.HasPassed(userID, skillID, prev)
	if err != nil {
		return false, "", err
	}
	if !passed {
		return false, fmt.Sprintf("you must pass %s before attempting %s", prev, level), nil
	}
	return true, fmt.Sprintf("%s unlocked", level), nil
}

// UnlockedLevels returns the contiguous prefix of levels the user can
// access for the skill.
func (s *AssessmentService) UnlockedLevels(userID, skillID uint) ([]model.DifficultyLevel, error) {
	unlocked := []model.DifficultyLevel{model.Level1}

	for order := 2; order <= len(model.Levels); order++ {
		level, _ := model.LevelByOrder(order)
		ok, _, err := s.CanAttempt(userID, skillID, level)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		unlocked = append(unlocked, level)
	}
	return unlocked, nil
}

// HighestPassedLevel returns the highest level with a PASSED attempt,
// or "" when none exists.
func (s *AssessmentService) HighestPassedLevel(userID, skillID uint) (model.DifficultyLevel, error) {
	for order := len(model.Levels); order >= 1; order-- {
		level, _ := model.LevelByOrder(order)
		passed, err := s.assessments.HasPassed(userID, skillID, level)
		if err != nil {
			return "", err
		}
		if passed {
			return level, nil
		}
	}
	return "", nil
}

// CreateAssessment starts a new timed attempt: checks the level gate,
// samples exactly QuestionsPerLevel questions without replacement and
// freezes them on the attempt.
func (s *AssessmentService) CreateAssessment(userID, skillID uint, level model.DifficultyLevel) (*model.SkillAssessment, error) {
	ok, reason, err := s.CanAttempt(userID, skillID, level)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrLevelLocked, reason)
	}

	available, err := s.questions.ActiveBySkillLevel(skillID, level)
	if err != nil {
		return nil, err
	}
	if len(available) < QuestionsPerLevel {
		return nil, fmt.Errorf("%w for %s: need %d, found %d",
			util.ErrInsufficientQuestions, level, QuestionsPerLevel, len(available))
	}

	pool := make([]model.AssessmentQuestion, len(available))
	copy(pool, available)
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	selected := pool[:QuestionsPerLevel]

	var totalPoints float64
	ids := make([]uint, 0, len(selected))
	for _, q := range selected {
		totalPoints += float64(q.Points)
		ids = append(ids, q.ID)
	}

	attemptNumber := 1
	var previousID *uint
	latest, err := s.assessments.LatestByUserSkillLevel(userID, skillID, level)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		attemptNumber = latest.AttemptNumber + 1
		prev := latest.ID
		previousID = &prev
	}

	now := s.now()
	assessment := &model.SkillAssessment{
		UserID:               userID,
		SkillID:              skillID,
		Level:                level,
		Status:               model.StatusInProgress,
		TotalQuestions:       QuestionsPerLevel,
		TotalPoints:          totalPoints,
		PassingScore:         PassingPercentage,
		StartedAt:            now,
		ExpiresAt:            now.Add(TimeLimit),
		AttemptNumber:        attemptNumber,
		PreviousAssessmentID: previousID,
	}
	if err := assessment.SetQuestionIDs(ids); err != nil {
		return nil, err
	}

	if err := s.assessments.Create(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// AssessmentQuestions returns the frozen question set of the attempt.
// Correct answers and explanations never serialize (json:"-").
func (s *AssessmentService) AssessmentQuestions(userID, assessmentID uint) ([]model.AssessmentQuestion, error) {
	assessment, err := s.getOwned(userID, assessmentID)
	if err != nil {
		return nil, err
	}
	ids, err := assessment.QuestionIDs()
	if err != nil {
		return nil, err
	}
	return s.questions.FindByIDs(ids)
}

// SubmitAnswer grades and records one answer, overwriting any earlier
// submission for the same question. Only questions in the attempt's
// frozen set are accepted; the attempt's aggregates are recomputed from
// the full answer set, not incremented.
func (s *AssessmentService) SubmitAnswer(userID, assessmentID, questionID uint, userAnswer string, timeTakenSeconds int) (*model.AssessmentAnswer, error) {
	assessment, err := s.getOwned(userID, assessmentID)
	if err != nil {
		return nil, err
	}

	if assessment.Status != model.StatusInProgress {
		return nil, util.ErrNotInProgress
	}
	if s.now().After(assessment.ExpiresAt) {
		assessment.Status = model.StatusExpired
		if err := s.assessments.Save(assessment); err != nil {
			return nil, err
		}
		return nil, util.ErrAssessmentExpired
	}

	ids, err := assessment.QuestionIDs()
	if err != nil {
		return nil, err
	}
	selected := false
	for _, id := range ids {
		if id == questionID {
			selected = true
			break
		}
	}
	if !selected {
		return nil, util.ErrQuestionNotFound
	}

	question, err := s.questions.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	isCorrect, points := ValidateAnswer(question, userAnswer)

	answer := &model.AssessmentAnswer{
		AssessmentID:     assessment.ID,
		QuestionID:       question.ID,
		UserAnswer:       userAnswer,
		IsCorrect:        isCorrect,
		PointsEarned:     points,
		TimeTakenSeconds: timeTakenSeconds,
	}
	if err := s.assessments.UpsertAnswer(answer); err != nil {
		return nil, err
	}

	answers, err := s.assessments.AnswersByAssessment(assessment.ID)
	if err != nil {
		return nil, err
	}
	var earned float64
	var totalTime int
	for _, a := range answers {
		earned += a.PointsEarned
		totalTime += a.TimeTakenSeconds
	}
	assessment.QuestionsAnswered = len(answers)
	assessment.Score = earned
	assessment.TimeTakenSeconds = totalTime

	if err := s.assessments.Save(assessment); err != nil {
		return nil, err
	}
	return answer, nil
}

// Finalize closes the attempt, computes the percentage score and moves
// it to a terminal status. Passing triggers certification and skill
// promotion synchronously.
func (s *AssessmentService) Finalize(userID, assessmentID uint) (*model.SkillAssessment, error) {
	assessment, err := s.getOwned(userID, assessmentID)
	if err != nil {
		return nil, err
	}

	if assessment.Status != model.StatusInProgress {
		return nil, util.ErrNotInProgress
	}

	now := s.now()
	if now.After(assessment.ExpiresAt) {
		assessment.Status = model.StatusExpired
		if err := s.assessments.Save(assessment); err != nil {
			return nil, err
		}
		return nil, util.ErrAssessmentExpired
	}

	percentage, passed := finalScore(assessment)
	assessment.PercentageScore = percentage
	assessment.CompletedAt = &now
	if passed {
		assessment.Status = model.StatusPassed
	} else {
		assessment.Status = model.StatusFailed
	}

	if err := s.assessments.Save(assessment); err != nil {
		return nil, err
	}

	if passed && s.certService != nil {
		if _, err := s.certService.Award(assessment); err != nil {
			return nil, err
		}
	}

	s.invalidateProgress(assessment.UserID, assessment.SkillID)
	return assessment, nil
}

// finalScore computes the rounded percentage and the pass verdict. A
// zero-point attempt scores 0.00 and fails.
func finalScore(a *model.SkillAssessment) (float64, bool) {
	if a.TotalPoints == 0 {
		return 0.00, false
	}
	percentage := roundScore(a.Score / a.TotalPoints * 100)
	return percentage, percentage >= a.PassingScore
}

func roundScore(x float64) float64 {
	return math.Round(x*100) / 100
}

// History lists the user's attempts, newest first, optionally scoped
// to one skill.
func (s *AssessmentService) History(userID uint, skillID *uint) ([]model.SkillAssessment, error) {
	if skillID != nil {
		return s.assessments.ListByUserSkill(userID, *skillID)
	}
	return s.assessments.ListByUser(userID)
}

// SkillProgress summarizes a user's certification state for a skill.
type SkillProgress struct {
	SkillID            uint                              `json:"skillId"`
	HighestPassedLevel model.DifficultyLevel             `json:"highestPassedLevel,omitempty"`
	UnlockedLevels     []model.DifficultyLevel           `json:"unlockedLevels"`
	LevelScores        map[model.DifficultyLevel]float64 `json:"levelScores"`
	CertificatesCount  int64                             `json:"certificatesCount"`
	TotalAttempts      int                               `json:"totalAttempts"`
}

// Progress builds the progress report, served from the redis cache
// when one is configured.
func (s *AssessmentService) Progress(ctx context.Context, userID, skillID uint) (*SkillProgress, error) {
	cacheKey := progressKey(userID, skillID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached SkillProgress
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	highest, err := s.HighestPassedLevel(userID, skillID)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.UnlockedLevels(userID, skillID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.assessments.ListByUserSkill(userID, skillID)
	if err != nil {
		return nil, err
	}
	levelScores := make(map[model.DifficultyLevel]float64)
	for _, a := range attempts {
		if a.Status != model.StatusPassed {
			continue
		}
		if best, ok := levelScores[a.Level]; !ok || a.PercentageScore > best {
			levelScores[a.Level] = a.PercentageScore
		}
	}

	certCount, err := s.certCounts.CountActive(userID, skillID)
	if err != nil {
		return nil, err
	}

	progress := &SkillProgress{
		SkillID:            skillID,
		HighestPassedLevel: highest,
		UnlockedLevels:     unlocked,
		LevelScores:        levelScores,
		CertificatesCount:  certCount,
		TotalAttempts:      len(attempts),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(progress); err == nil {
			s.cache.Set(ctx, cacheKey, raw, progressCacheTTL)
		}
	}
	return progress, nil
}

// Assessment fetches an attempt without an ownership check, for
// administrative use.
func (s *AssessmentService) Assessment(assessmentID uint) (*model.SkillAssessment, error) {
	assessment, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	return assessment, nil
}

func (s *AssessmentService) getOwned(userID, assessmentID uint) (*model.SkillAssessment, error) {
	assessment, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return assessment, nil
}

func progressKey(userID, skillID uint) string {
	return fmt.Sprintf("progress:%d:%d", userID, skillID)
}

func (s *AssessmentService) invalidateProgress(userID, skillID uint) {
	if s.cache == nil {
		return
	}
	s.cache.Del(context.Background(), progressKey(userID, skillID))
}
