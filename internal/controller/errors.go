package controller

import (
	"errors"
	"skillsetz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps service errors onto the response envelope.
// Anything unrecognized is logged and reported as a 500.
func respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLevelLocked),
		errors.Is(err, util.ErrInsufficientQuestions),
		errors.Is(err, util.ErrNotInProgress),
		errors.Is(err, util.ErrAssessmentExpired),
		errors.Is(err, util.ErrNotPassed),
		errors.Is(err, util.ErrNoProfile):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAttemptInProgress):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrSkillNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrAssessmentNotFound),
		errors.Is(err, util.ErrCertificateNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
