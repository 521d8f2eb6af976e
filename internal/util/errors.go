package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrSkillNotFound         = errors.New("skill not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrCertificateNotFound   = errors.New("certificate not found")
	ErrLevelLocked           = errors.New("level locked")
	ErrInsufficientQuestions = errors.New("insufficient questions")
	ErrNotInProgress         = errors.New("assessment is not in progress")
	ErrAssessmentExpired     = errors.New("assessment has expired")
	ErrAttemptInProgress     = errors.New("an attempt is already in progress")
	ErrNotPassed             = errors.New("assessment was not passed")
	ErrNoProfile             = errors.New("user has no profile")
)
