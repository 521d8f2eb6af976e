package controller

import (
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/service"
	"skillsetz_backend/internal/util"
	"skillsetz_backend/pkg/monitoring"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// swagger:model StartAssessmentRequest
type StartAssessmentRequest struct {
	SkillID uint   `json:"skillId" binding:"required"`
	Level   string `json:"level" binding:"required"`
}

// Start godoc
// @Summary Start a timed assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartAssessmentRequest true "Skill and level"
// @Success 201 {object} util.Response{data=model.SkillAssessment}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/assessments [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := model.DifficultyLevel(req.Level)
	if level.Order() == 0 {
		util.BadRequest(ctx, "invalid level")
		return
	}

	assessment, err := c.Service.CreateAssessment(claims.UserID, req.SkillID, level)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, assessment)
}

// Questions godoc
// @Summary Fetch the question set of an attempt
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=[]model.AssessmentQuestion}
// @Router /api/assessments/{id}/questions [get]
func (c *AssessmentController) Questions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	questions, err := c.Service.AssessmentQuestions(claims.UserID, uint(id))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	QuestionID       uint   `json:"questionId" binding:"required"`
	Answer           string `json:"answer"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
}

// SubmitAnswer godoc
// @Summary Submit (or resubmit) an answer
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param body body SubmitAnswerRequest true "Answer"
// @Success 200 {object} util.Response{data=model.AssessmentAnswer}
// @Failure 400 {object} util.Response
// @Router /api/assessments/{id}/answers [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.SubmitAnswer(claims.UserID, uint(id), req.QuestionID, req.Answer, req.TimeTakenSeconds)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// Finalize godoc
// @Summary Finalize an attempt and get the verdict
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.SkillAssessment}
// @Failure 400 {object} util.Response
// @Router /api/assessments/{id}/finalize [post]
func (c *AssessmentController) Finalize(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	assessment, err := c.Service.Finalize(claims.UserID, uint(id))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	monitoring.AssessmentsCompleted.WithLabelValues(string(assessment.Status)).Inc()
	if assessment.Status == model.StatusPassed {
		monitoring.CertificatesIssued.Inc()
	}
	util.Success(ctx, assessment)
}

// History godoc
// @Summary List own attempts
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param skillId query int false "Skill filter"
// @Success 200 {object} util.Response{data=[]model.SkillAssessment}
// @Router /api/assessments [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var skillID *uint
	if raw := ctx.Query("skillId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			sid := uint(id)
			skillID = &sid
		}
	}

	history, err := c.Service.History(claims.UserID, skillID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// UnlockedLevels godoc
// @Summary Unlocked levels for a skill
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} util.Response
// @Router /api/skills/{id}/levels [get]
func (c *AssessmentController) UnlockedLevels(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skillID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	levels, err := c.Service.UnlockedLevels(claims.UserID, uint(skillID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unlockedLevels": levels})
}

// Progress godoc
// @Summary Certification progress for a skill
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Success 200 {object} util.Response{data=service.SkillProgress}
// @Router /api/skills/{id}/progress [get]
func (c *AssessmentController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	skillID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	progress, err := c.Service.Progress(ctx.Request.Context(), claims.UserID, uint(skillID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
