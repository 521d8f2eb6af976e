package service

import (
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/util"

	"gorm.io/gorm"
)

type fakeQuestionPool struct {
	questions []model.AssessmentQuestion
}

func (f *fakeQuestionPool) ActiveBySkillLevel(skillID uint, level model.DifficultyLevel) ([]model.AssessmentQuestion, error) {
	var out []model.AssessmentQuestion
	for _, q := range f.questions {
		if q.SkillID == skillID && q.Level == level && q.IsActive {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionPool) FindByID(id uint) (*model.AssessmentQuestion, error) {
	for _, q := range f.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionPool) FindByIDs(ids []uint) ([]model.AssessmentQuestion, error) {
	var out []model.AssessmentQuestion
	for _, id := range ids {
		for _, q := range f.questions {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

type fakeAssessmentStore struct {
	nextID       uint
	nextAnswerID uint
	assessments  map[uint]model.SkillAssessment
	answers      map[uint][]model.AssessmentAnswer
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{
		assessments: make(map[uint]model.SkillAssessment),
		answers:     make(map[uint][]model.AssessmentAnswer),
	}
}

func (f *fakeAssessmentStore) add(a model.SkillAssessment) uint {
	f.nextID++
	a.ID = f.nextID
	f.assessments[a.ID] = a
	return a.ID
}

func (f *fakeAssessmentStore) Create(a *model.SkillAssessment) error {
	for _, existing := range f.assessments {
		if existing.UserID == a.UserID && existing.SkillID == a.SkillID &&
			existing.Level == a.Level && existing.Status == model.StatusInProgress {
			return util.ErrAttemptInProgress
		}
	}
	f.nextID++
	a.ID = f.nextID
	f.assessments[a.ID] = *a
	return nil
}

func (f *fakeAssessmentStore) Save(a *model.SkillAssessment) error {
	f.assessments[a.ID] = *a
	return nil
}

func (f *fakeAssessmentStore) FindByID(id uint) (*model.SkillAssessment, error) {
	a, ok := f.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := a
	return &found, nil
}

func (f *fakeAssessmentStore) LatestByUserSkillLevel(userID, skillID uint, level model.DifficultyLevel) (*model.SkillAssessment, error) {
	var latest *model.SkillAssessment
	for _, a := range f.assessments {
		if a.UserID != userID || a.SkillID != skillID || a.Level != level {
			continue
		}
		if latest == nil || a.AttemptNumber > latest.AttemptNumber {
			found := a
			latest = &found
		}
	}
	return latest, nil
}

func (f *fakeAssessmentStore) HasPassed(userID, skillID uint, level model.DifficultyLevel) (bool, error) {
	for _, a := range f.assessments {
		if a.UserID == userID && a.SkillID == skillID && a.Level == level && a.Status == model.StatusPassed {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssessmentStore) ListByUserSkill(userID, skillID uint) ([]model.SkillAssessment, error) {
	var out []model.SkillAssessment
	for _, a := range f.assessments {
		if a.UserID == userID && a.SkillID == skillID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentStore) ListByUser(userID uint) ([]model.SkillAssessment, error) {
	var out []model.SkillAssessment
	for _, a := range f.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentStore) UpsertAnswer(ans *model.AssessmentAnswer) error {
	list := f.answers[ans.AssessmentID]
	for i, existing := range list {
		if existing.QuestionID == ans.QuestionID {
			ans.ID = existing.ID
			list[i] = *ans
			return nil
		}
	}
	f.nextAnswerID++
	ans.ID = f.nextAnswerID
	f.answers[ans.AssessmentID] = append(list, *ans)
	return nil
}

func (f *fakeAssessmentStore) AnswersByAssessment(assessmentID uint) ([]model.AssessmentAnswer, error) {
	out := make([]model.AssessmentAnswer, len(f.answers[assessmentID]))
	copy(out, f.answers[assessmentID])
	return out, nil
}

type fakeCertificateStore struct {
	nextID uint
	certs  []model.SkillLevelCertificate
}

func (f *fakeCertificateStore) Upsert(cert *model.SkillLevelCertificate) error {
	for i, existing := range f.certs {
		if existing.UserID == cert.UserID && existing.SkillID == cert.SkillID && existing.Level == cert.Level {
			cert.ID = existing.ID
			cert.CertificateID = existing.CertificateID
			f.certs[i] = *cert
			return nil
		}
	}
	f.nextID++
	cert.ID = f.nextID
	f.certs = append(f.certs, *cert)
	return nil
}

func (f *fakeCertificateStore) FindByCertificateID(certificateID string) (*model.SkillLevelCertificate, error) {
	for _, c := range f.certs {
		if c.CertificateID == certificateID {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCertificateStore) ListByUser(userID uint) ([]model.SkillLevelCertificate, error) {
	var out []model.SkillLevelCertificate
	for _, c := range f.certs {
		if c.UserID == userID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCertificateStore) ListByUserSkill(userID, skillID uint) ([]model.SkillLevelCertificate, error) {
	var out []model.SkillLevelCertificate
	for _, c := range f.certs {
		if c.UserID == userID && c.SkillID == skillID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCertificateStore) CountActive(userID, skillID uint) (int64, error) {
	certs, _ := f.ListByUserSkill(userID, skillID)
	return int64(len(certs)), nil
}

type fakeSkillDirectory struct {
	skills map[uint]model.Skill
}

func (f *fakeSkillDirectory) FindByID(id uint) (*model.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := s
	return &found, nil
}

type fakeProfileStore struct {
	profiles map[uint]model.UserProfile // keyed by user ID
}

func (f *fakeProfileStore) FindProfileByUserID(userID uint) (*model.UserProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := p
	return &found, nil
}

type fakeUserSkillStore struct {
	nextID uint
	skills []model.UserSkill
}

func (f *fakeUserSkillStore) FindUserSkill(profileID, skillID uint) (*model.UserSkill, error) {
	for _, us := range f.skills {
		if us.ProfileID == profileID && us.SkillID == skillID {
			found := us
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserSkillStore) CreateUserSkill(us *model.UserSkill) error {
	f.nextID++
	us.ID = f.nextID
	f.skills = append(f.skills, *us)
	return nil
}

func (f *fakeUserSkillStore) SaveUserSkill(us *model.UserSkill) error {
	for i, existing := range f.skills {
		if existing.ID == us.ID {
			f.skills[i] = *us
			return nil
		}
	}
	f.skills = append(f.skills, *us)
	return nil
}
