package repository

import (
	"errors"
	"skillsetz_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

func (r *UserRepository) FindProfileByUserID(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreateProfile returns the user's profile, creating an empty one
// on first access.
func (r *UserRepository) GetOrCreateProfile(userID uint) (*model.UserProfile, error) {
	profile, err := r.FindProfileByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profile = &model.UserProfile{UserID: userID}
	if err := r.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *UserRepository) UpdateProfile(profile *model.UserProfile) error {
	return r.DB.Save(profile).Error
}
