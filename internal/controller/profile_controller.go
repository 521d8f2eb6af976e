package controller

import (
	"skillsetz_backend/internal/service"
	"skillsetz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxResumeSize = 10 << 20 // 10 MiB

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileUpdateInput true "Profile fields"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 400 {object} util.Response
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UploadResume godoc
// @Summary Upload a resume file
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 400 {object} util.Response
// @Router /api/profile/resume [post]
func (c *ProfileController) UploadResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}
	if fileHeader.Size > maxResumeSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	profile, err := c.ProfileService.UploadResume(
		ctx.Request.Context(), claims.UserID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
