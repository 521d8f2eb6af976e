package controller

import (
	"encoding/json"
	"skillsetz_backend/internal/model"
	"skillsetz_backend/internal/service"
	"skillsetz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// QuestionController is the admin surface of the question bank.
type QuestionController struct {
	QuestionService *service.QuestionService
	ImportService   *service.QuestionImportService
}

func NewQuestionController(questionService *service.QuestionService, importService *service.QuestionImportService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		ImportService:   importService,
	}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	SkillID          uint            `json:"skillId" binding:"required"`
	Level            string          `json:"level" binding:"required"`
	QuestionType     string          `json:"questionType" binding:"required"`
	QuestionText     string          `json:"questionText" binding:"required"`
	CodeSnippet      string          `json:"codeSnippet"`
	Options          json.RawMessage `json:"options"`
	CorrectAnswer    string          `json:"correctAnswer" binding:"required"`
	Explanation      string          `json:"explanation"`
	Points           int             `json:"points"`
	TimeLimitSeconds int             `json:"timeLimitSeconds"`
}

// Create godoc
// @Summary Create a question (admin)
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.AssessmentQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level := model.DifficultyLevel(req.Level)
	if level.Order() == 0 {
		util.BadRequest(ctx, "invalid level")
		return
	}

	q := &model.AssessmentQuestion{
		SkillID:          req.SkillID,
		Level:            level,
		QuestionType:     model.QuestionType(req.QuestionType),
		QuestionText:     req.QuestionText,
		CodeSnippet:      req.CodeSnippet,
		Options:          req.Options,
		CorrectAnswer:    req.CorrectAnswer,
		Explanation:      req.Explanation,
		Points:           req.Points,
		TimeLimitSeconds: req.TimeLimitSeconds,
		IsActive:         true,
	}
	if err := c.QuestionService.Create(q); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// Get godoc
// @Summary Get a question (admin)
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response{data=model.AssessmentQuestion}
// @Router /api/admin/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.QuestionService.Get(uint(id))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// Deactivate godoc
// @Summary Deactivate a question (admin)
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *QuestionController) Deactivate(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.QuestionService.Deactivate(uint(id)); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Import godoc
// @Summary Bulk import a JSON question bank (admin)
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body []service.QuestionImport true "Question bank"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/questions/import [post]
func (c *QuestionController) Import(ctx *gin.Context) {
	var items []service.QuestionImport
	if err := ctx.ShouldBindJSON(&items); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ImportService.Import(items)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
