package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/repository"

	"github.com/google/uuid"
)

type ProfileService struct {
	UserRepo *repository.UserRepository
	Storage  StorageProvider
}

func NewProfileService(userRepo *repository.UserRepository, storage StorageProvider) *ProfileService {
	return &ProfileService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *ProfileService) GetProfile(userID uint) (*model.UserProfile, error) {
	return s.UserRepo.GetOrCreateProfile(userID)
}

type ProfileUpdateInput struct {
	Bio               string  `json:"bio"`
	CurrentTitle      string  `json:"currentTitle"`
	CurrentCompany    string  `json:"currentCompany"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	LinkedinURL       string  `json:"linkedinUrl"`
	GithubURL         string  `json:"githubUrl"`
	PortfolioURL      string  `json:"portfolioUrl"`
	CareerGoal        string  `json:"careerGoal"`
	Industry          string  `json:"industry"`
}

func (s *ProfileService) UpdateProfile(userID uint, input ProfileUpdateInput) (*model.UserProfile, error) {
	profile, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = input.Bio
	profile.CurrentTitle = input.CurrentTitle
	profile.CurrentCompany = input.CurrentCompany
	profile.YearsOfExperience = input.YearsOfExperience
	profile.LinkedinURL = input.LinkedinURL
	profile.GithubURL = input.GithubURL
	profile.PortfolioURL = input.PortfolioURL
	profile.CareerGoal = input.CareerGoal
	profile.Industry = input.Industry

	if err := s.UserRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UploadResume stores the resume file and records its URL on the
// profile. Filenames are namespaced per user with a random component
// so uploads never collide.
func (s *ProfileService) UploadResume(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (*model.UserProfile, error) {
	profile, err := s.UserRepo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.New().String(), ext)

	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	profile.ResumeURL = url
	if err := s.UserRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
