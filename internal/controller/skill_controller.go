package controller

import (
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/service"
	"skillsetz_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

// swagger:model SkillCreateRequest
type SkillCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  *uint  `json:"categoryId"`
	SkillType   string `json:"skillType"`
	Description string `json:"description"`
}

// CreateSkill godoc
// @Summary Create a skill (admin)
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SkillCreateRequest true "Skill"
// @Success 201 {object} util.Response{data=model.Skill}
// @Failure 400 {object} util.Response
// @Router /api/admin/skills [post]
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var req SkillCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill := &model.Skill{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		SkillType:   model.SkillType(req.SkillType),
		Description: req.Description,
	}
	if err := c.SkillService.CreateSkill(skill); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

// ListSkills godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param categoryId query int false "Category filter"
// @Param search query string false "Name search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/skills [get]
func (c *SkillController) ListSkills(ctx *gin.Context) {
	var categoryID *uint
	if raw := ctx.Query("categoryId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			cid := uint(id)
			categoryID = &cid
		}
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	skills, total, err := c.SkillService.ListSkills(categoryID, ctx.Query("search"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{
		List:  skills,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ListCategories godoc
// @Summary List skill categories
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SkillCategory}
// @Router /api/skills/categories [get]
func (c *SkillController) ListCategories(ctx *gin.Context) {
	categories, err := c.SkillService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// swagger:model CategoryCreateRequest
type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parentId"`
}

// CreateCategory godoc
// @Summary Create a skill category (admin)
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryCreateRequest true "Category"
// @Success 201 {object} util.Response{data=model.SkillCategory}
// @Router /api/admin/skills/categories [post]
func (c *SkillController) CreateCategory(ctx *gin.Context) {
	var req CategoryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.SkillCategory{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := c.SkillService.CreateCategory(category); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// swagger:model AttachSkillRequest
type AttachSkillRequest struct {
	SkillID           uint       `json:"skillId" binding:"required"`
	Proficiency       string     `json:"proficiency"`
	YearsOfExperience float64    `json:"yearsOfExperience"`
	LastUsed          *time.Time `json:"lastUsed"`
	Notes             string     `json:"notes"`
}

// AttachSkill godoc
// @Summary Attach a skill to own profile
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AttachSkillRequest true "Skill attachment"
// @Success 200 {object} util.Response{data=model.UserSkill}
// @Failure 400 {object} util.Response
// @Router /api/profile/skills [post]
func (c *SkillController) AttachSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AttachSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userSkill, err := c.SkillService.AttachSkill(claims.UserID, service.AttachSkillInput{
		SkillID:           req.SkillID,
		Proficiency:       model.Proficiency(req.Proficiency),
		YearsOfExperience: req.YearsOfExperience,
		LastUsed:          req.LastUsed,
		Notes:             req.Notes,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, userSkill)
}

// ListOwnSkills godoc
// @Summary List own profile skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserSkill}
// @Router /api/profile/skills [get]
func (c *SkillController) ListOwnSkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skills, err := c.SkillService.ListUserSkills(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// DetachSkill godoc
// @Summary Remove a skill from own profile
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "Skill ID"
// @Success 200 {object} util.Response
// @Router /api/profile/skills/{skillId} [delete]
func (c *SkillController) DetachSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skillID, err := strconv.Atoi(ctx.Param("skillId"))
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	if err := c.SkillService.DetachSkill(claims.UserID, uint(skillID)); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
