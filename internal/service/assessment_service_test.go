package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/util"
	"strings"
	"testing"
	"time"
)

const (
	testUser  = uint(1)
	testSkill = uint(10)
)

type testEnv struct {
	store      *fakeAssessmentStore
	pool       *fakeQuestionPool
	certs      *fakeCertificateStore
	userSkills *fakeUserSkillStore
	profiles   *fakeProfileStore
	svc        *AssessmentService
	clock      time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store: newFakeAssessmentStore(),
		pool:  &fakeQuestionPool{},
		certs: &fakeCertificateStore{},
		profiles: &fakeProfileStore{profiles: map[uint]model.UserProfile{
			testUser: {BaseModel: model.BaseModel{ID: 7}, UserID: testUser},
		}},
		userSkills: &fakeUserSkillStore{},
		clock:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	skills := &fakeSkillDirectory{skills: map[uint]model.Skill{
		testSkill: {BaseModel: model.BaseModel{ID: testSkill}, Name: "Python"},
	}}

	certSvc := NewCertificateService(env.certs, skills, env.profiles, env.userSkills)
	certSvc.now = func() time.Time { return env.clock }

	env.svc = NewAssessmentService(env.store, env.pool, env.certs, certSvc, nil)
	env.svc.now = func() time.Time { return env.clock }
	env.svc.rng = rand.New(rand.NewSource(42))
	return env
}

// seedQuestions fills the bank with n active multiple-choice questions
// whose correct answer is "a".
func (env *testEnv) seedQuestions(level model.DifficultyLevel, n, points int) {
	for i := 0; i < n; i++ {
		env.pool.questions = append(env.pool.questions, model.AssessmentQuestion{
			BaseModel:     model.BaseModel{ID: uint(len(env.pool.questions) + 1)},
			SkillID:       testSkill,
			Level:         level,
			QuestionType:  model.MultipleChoice,
			QuestionText:  fmt.Sprintf("question %d", i+1),
			CorrectAnswer: "a",
			Points:        points,
			IsActive:      true,
		})
	}
}

func (env *testEnv) passLevel(level model.DifficultyLevel, score float64) {
	env.store.add(model.SkillAssessment{
		UserID:          testUser,
		SkillID:         testSkill,
		Level:           level,
		Status:          model.StatusPassed,
		PercentageScore: score,
		AttemptNumber:   1,
		StartedAt:       env.clock.Add(-24 * time.Hour),
	})
}

func TestCanAttemptLevelOneAlwaysOpen(t *testing.T) {
	env := newTestEnv()
	ok, reason, err := env.svc.CanAttempt(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("LEVEL_1 should always be open, got reason %q", reason)
	}
}

func TestCanAttemptLockedCitesPrerequisite(t *testing.T) {
	env := newTestEnv()
	ok, reason, err := env.svc.CanAttempt(testUser, testSkill, model.Level2)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("LEVEL_2 must be locked before LEVEL_1 is passed")
	}
	if !strings.Contains(reason, "LEVEL_1") || !strings.Contains(reason, "LEVEL_2") {
		t.Errorf("reason should name both levels, got %q", reason)
	}
}

func TestCanAttemptUnlockedAfterPass(t *testing.T) {
	env := newTestEnv()
	env.passLevel(model.Level1, 80)
	ok, _, err := env.svc.CanAttempt(testUser, testSkill, model.Level2)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("LEVEL_2 should unlock after passing LEVEL_1")
	}
}

func TestCreateAssessmentInsufficientQuestions(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, QuestionsPerLevel-1, 10)

	_, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if !errors.Is(err, util.ErrInsufficientQuestions) {
		t.Fatalf("want ErrInsufficientQuestions, got %v", err)
	}
}

func TestCreateAssessmentLevelLocked(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level3, 30, 10)

	_, err := env.svc.CreateAssessment(testUser, testSkill, model.Level3)
	if !errors.Is(err, util.ErrLevelLocked) {
		t.Fatalf("want ErrLevelLocked, got %v", err)
	}
}

func TestCreateAssessmentSelectsTwentyUniqueQuestions(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 35, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}

	ids, err := a.QuestionIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != QuestionsPerLevel {
		t.Fatalf("selected %d questions, want %d", len(ids), QuestionsPerLevel)
	}
	seen := make(map[uint]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("question %d selected twice", id)
		}
		seen[id] = true
		if id < 1 || id > 35 {
			t.Fatalf("question %d is not in the bank", id)
		}
	}

	if a.TotalQuestions != QuestionsPerLevel {
		t.Errorf("TotalQuestions = %d, want %d", a.TotalQuestions, QuestionsPerLevel)
	}
	if a.TotalPoints != 200 {
		t.Errorf("TotalPoints = %v, want 200", a.TotalPoints)
	}
	if a.Status != model.StatusInProgress {
		t.Errorf("Status = %s, want IN_PROGRESS", a.Status)
	}
	if a.AttemptNumber != 1 {
		t.Errorf("AttemptNumber = %d, want 1", a.AttemptNumber)
	}
	if !a.ExpiresAt.Equal(env.clock.Add(TimeLimit)) {
		t.Errorf("ExpiresAt = %v, want start + 2h", a.ExpiresAt)
	}
}

func TestCreateAssessmentRejectsParallelAttempt(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 25, 10)

	if _, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1); err != nil {
		t.Fatal(err)
	}
	_, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if !errors.Is(err, util.ErrAttemptInProgress) {
		t.Fatalf("want ErrAttemptInProgress, got %v", err)
	}
}

func TestCreateAssessmentNumbersRetakes(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 25, 10)

	first, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.Finalize(testUser, first.ID); err != nil {
		t.Fatal(err)
	}

	second, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	if second.AttemptNumber != 2 {
		t.Errorf("AttemptNumber = %d, want 2", second.AttemptNumber)
	}
	if second.PreviousAssessmentID == nil || *second.PreviousAssessmentID != first.ID {
		t.Errorf("PreviousAssessmentID = %v, want %d", second.PreviousAssessmentID, first.ID)
	}
}

func TestSubmitAnswerRecomputesAggregates(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := a.QuestionIDs()

	ans, err := env.svc.SubmitAnswer(testUser, a.ID, ids[0], "a", 30)
	if err != nil {
		t.Fatal(err)
	}
	if !ans.IsCorrect || ans.PointsEarned != 10 {
		t.Fatalf("correct answer should earn full points, got %+v", ans)
	}

	stored, _ := env.store.FindByID(a.ID)
	if stored.QuestionsAnswered != 1 || stored.Score != 10 || stored.TimeTakenSeconds != 30 {
		t.Fatalf("aggregates after first answer = (%d, %v, %d)",
			stored.QuestionsAnswered, stored.Score, stored.TimeTakenSeconds)
	}

	// Resubmission overwrites the same row; nothing double counts.
	ans2, err := env.svc.SubmitAnswer(testUser, a.ID, ids[0], "b", 45)
	if err != nil {
		t.Fatal(err)
	}
	if ans2.IsCorrect {
		t.Fatal("wrong resubmission must not stay correct")
	}
	if ans2.ID != ans.ID {
		t.Errorf("resubmission created a new row: %d vs %d", ans2.ID, ans.ID)
	}

	stored, _ = env.store.FindByID(a.ID)
	if stored.QuestionsAnswered != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", stored.QuestionsAnswered)
	}
	if stored.Score != 0 {
		t.Errorf("Score = %v, want 0 after overwriting with a wrong answer", stored.Score)
	}
	if stored.TimeTakenSeconds != 45 {
		t.Errorf("TimeTakenSeconds = %d, want 45", stored.TimeTakenSeconds)
	}
}

func TestSubmitAnswerExpiryTransition(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := a.QuestionIDs()

	env.clock = env.clock.Add(TimeLimit + time.Minute)

	_, err = env.svc.SubmitAnswer(testUser, a.ID, ids[0], "a", 10)
	if !errors.Is(err, util.ErrAssessmentExpired) {
		t.Fatalf("want ErrAssessmentExpired, got %v", err)
	}
	stored, _ := env.store.FindByID(a.ID)
	if stored.Status != model.StatusExpired {
		t.Errorf("Status = %s, want EXPIRED", stored.Status)
	}

	// A second submit hits the terminal-status guard, not expiry again.
	_, err = env.svc.SubmitAnswer(testUser, a.ID, ids[0], "a", 10)
	if !errors.Is(err, util.ErrNotInProgress) {
		t.Fatalf("want ErrNotInProgress after expiry, got %v", err)
	}
}

func TestSubmitAnswerRejectsUnselectedQuestion(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 35, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := a.QuestionIDs()
	selected := make(map[uint]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var outside uint
	for _, q := range env.pool.questions {
		if !selected[q.ID] {
			outside = q.ID
			break
		}
	}
	if outside == 0 {
		t.Fatal("expected bank questions outside the frozen set")
	}

	_, err = env.svc.SubmitAnswer(testUser, a.ID, outside, "a", 10)
	if !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("want ErrQuestionNotFound, got %v", err)
	}

	stored, _ := env.store.FindByID(a.ID)
	if stored.QuestionsAnswered != 0 || stored.Score != 0 {
		t.Errorf("rejected answer changed aggregates: (%d, %v)",
			stored.QuestionsAnswered, stored.Score)
	}
}

func TestScoreNeverExceedsTotalPoints(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 35, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}

	// Answer every bank question correctly; only the frozen 20 count.
	for _, q := range env.pool.questions {
		if _, err := env.svc.SubmitAnswer(testUser, a.ID, q.ID, "a", 10); err != nil &&
			!errors.Is(err, util.ErrQuestionNotFound) {
			t.Fatal(err)
		}
	}

	result, err := env.svc.Finalize(testUser, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.QuestionsAnswered != QuestionsPerLevel {
		t.Errorf("QuestionsAnswered = %d, want %d", result.QuestionsAnswered, QuestionsPerLevel)
	}
	if result.Score > result.TotalPoints {
		t.Errorf("Score %v exceeds TotalPoints %v", result.Score, result.TotalPoints)
	}
	if result.PercentageScore != 100.00 {
		t.Errorf("PercentageScore = %v, want 100.00", result.PercentageScore)
	}
}

func TestSubmitAnswerOwnership(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, err := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := a.QuestionIDs()

	_, err = env.svc.SubmitAnswer(99, a.ID, ids[0], "a", 10)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
}

func (env *testEnv) answerN(t *testing.T, a *model.SkillAssessment, correct int) {
	t.Helper()
	ids, err := a.QuestionIDs()
	if err != nil {
		t.Fatal(err)
	}
	for i, id := range ids {
		answer := "a"
		if i >= correct {
			answer = "wrong"
		}
		if _, err := env.svc.SubmitAnswer(testUser, a.ID, id, answer, 20); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFinalizePassAtExactThreshold(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, _ := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	env.answerN(t, a, 14) // 140/200 = 70.00

	result, err := env.svc.Finalize(testUser, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.PercentageScore != 70.00 {
		t.Errorf("PercentageScore = %v, want 70.00", result.PercentageScore)
	}
	if result.Status != model.StatusPassed {
		t.Errorf("Status = %s, want PASSED", result.Status)
	}
	if result.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	// Passing certifies and promotes synchronously.
	if len(env.certs.certs) != 1 {
		t.Fatalf("certificates issued = %d, want 1", len(env.certs.certs))
	}
	cert := env.certs.certs[0]
	if cert.Level != model.Level1 || cert.Score != 70.00 {
		t.Errorf("certificate = %+v", cert)
	}
	if len(env.userSkills.skills) != 1 {
		t.Fatalf("user skills = %d, want 1", len(env.userSkills.skills))
	}
	us := env.userSkills.skills[0]
	if us.Proficiency != model.Beginner || !us.IsVerified {
		t.Errorf("promoted skill = %+v", us)
	}
	if !strings.Contains(us.VerifiedBy, "LEVEL_1") {
		t.Errorf("VerifiedBy = %q, should record the level", us.VerifiedBy)
	}
}

func TestFinalizeFailBelowThreshold(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, _ := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	env.answerN(t, a, 13) // 130/200 = 65.00

	result, err := env.svc.Finalize(testUser, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != model.StatusFailed {
		t.Errorf("Status = %s, want FAILED", result.Status)
	}
	if result.PercentageScore != 65.00 {
		t.Errorf("PercentageScore = %v, want 65.00", result.PercentageScore)
	}
	if len(env.certs.certs) != 0 {
		t.Errorf("failed attempt must not issue a certificate, got %d", len(env.certs.certs))
	}
}

func TestFinalizeZeroTotalPoints(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 0)

	a, _ := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	env.answerN(t, a, 20)

	result, err := env.svc.Finalize(testUser, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != model.StatusFailed || result.PercentageScore != 0.00 {
		t.Errorf("zero-point attempt: status %s score %v, want FAILED 0.00",
			result.Status, result.PercentageScore)
	}
}

func TestFinalizeTerminalGuard(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, _ := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	if _, err := env.svc.Finalize(testUser, a.ID); err != nil {
		t.Fatal(err)
	}
	_, err := env.svc.Finalize(testUser, a.ID)
	if !errors.Is(err, util.ErrNotInProgress) {
		t.Fatalf("want ErrNotInProgress, got %v", err)
	}
}

func TestFinalizeExpired(t *testing.T) {
	env := newTestEnv()
	env.seedQuestions(model.Level1, 20, 10)

	a, _ := env.svc.CreateAssessment(testUser, testSkill, model.Level1)
	env.clock = env.clock.Add(TimeLimit + time.Second)

	_, err := env.svc.Finalize(testUser, a.ID)
	if !errors.Is(err, util.ErrAssessmentExpired) {
		t.Fatalf("want ErrAssessmentExpired, got %v", err)
	}
	stored, _ := env.store.FindByID(a.ID)
	if stored.Status != model.StatusExpired {
		t.Errorf("Status = %s, want EXPIRED", stored.Status)
	}
}

func TestUnlockedLevelsPrefix(t *testing.T) {
	env := newTestEnv()
	env.passLevel(model.Level1, 75)
	env.passLevel(model.Level2, 80)

	levels, err := env.svc.UnlockedLevels(testUser, testSkill)
	if err != nil {
		t.Fatal(err)
	}
	want := []model.DifficultyLevel{model.Level1, model.Level2, model.Level3}
	if len(levels) != len(want) {
		t.Fatalf("unlocked = %v, want %v", levels, want)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("unlocked = %v, want %v", levels, want)
		}
	}
}

func TestHighestPassedLevel(t *testing.T) {
	env := newTestEnv()

	highest, err := env.svc.HighestPassedLevel(testUser, testSkill)
	if err != nil {
		t.Fatal(err)
	}
	if highest != "" {
		t.Fatalf("highest = %q, want none", highest)
	}

	env.passLevel(model.Level1, 75)
	env.passLevel(model.Level2, 72)

	highest, err = env.svc.HighestPassedLevel(testUser, testSkill)
	if err != nil {
		t.Fatal(err)
	}
	if highest != model.Level2 {
		t.Fatalf("highest = %q, want LEVEL_2", highest)
	}
}

func TestProgressReport(t *testing.T) {
	env := newTestEnv()
	env.passLevel(model.Level1, 75)
	env.passLevel(model.Level1, 90) // retake with a better score
	env.passLevel(model.Level2, 71)
	env.store.add(model.SkillAssessment{
		UserID: testUser, SkillID: testSkill, Level: model.Level3,
		Status: model.StatusFailed, PercentageScore: 40,
	})
	env.certs.certs = []model.SkillLevelCertificate{
		{UserID: testUser, SkillID: testSkill, Level: model.Level1, IsActive: true},
		{UserID: testUser, SkillID: testSkill, Level: model.Level2, IsActive: true},
	}

	progress, err := env.svc.Progress(context.Background(), testUser, testSkill)
	if err != nil {
		t.Fatal(err)
	}
	if progress.HighestPassedLevel != model.Level2 {
		t.Errorf("HighestPassedLevel = %q, want LEVEL_2", progress.HighestPassedLevel)
	}
	if progress.LevelScores[model.Level1] != 90 {
		t.Errorf("best LEVEL_1 score = %v, want 90", progress.LevelScores[model.Level1])
	}
	if _, ok := progress.LevelScores[model.Level3]; ok {
		t.Error("failed levels must not report a best score")
	}
	if progress.CertificatesCount != 2 {
		t.Errorf("CertificatesCount = %d, want 2", progress.CertificatesCount)
	}
	if progress.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", progress.TotalAttempts)
	}
	if len(progress.UnlockedLevels) != 3 {
		t.Errorf("UnlockedLevels = %v, want prefix through LEVEL_3", progress.UnlockedLevels)
	}
}
