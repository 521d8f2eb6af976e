package controller

import (
	"skillsetz_backend/internal/service"
	"skillsetz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertService       *service.CertificateService
	AssessmentService *service.AssessmentService
}

func NewCertificateController(certService *service.CertificateService, assessmentService *service.AssessmentService) *CertificateController {
	return &CertificateController{
		CertService:       certService,
		AssessmentService: assessmentService,
	}
}

// List godoc
// @Summary List own certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SkillLevelCertificate}
// @Router /api/certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	certs, err := c.CertService.UserCertificates(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// Verify godoc
// @Summary Verify a certificate by its public ID
// @Tags certificates
// @Produce json
// @Param certificateId path string true "Certificate ID"
// @Success 200 {object} util.Response{data=model.SkillLevelCertificate}
// @Failure 404 {object} util.Response
// @Router /api/certificates/verify/{certificateId} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	cert, err := c.CertService.Verify(ctx.Param("certificateId"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}

// Reissue godoc
// @Summary Re-run certification for a passed assessment (admin)
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.SkillLevelCertificate}
// @Failure 400 {object} util.Response
// @Router /api/admin/assessments/{id}/certificate [post]
func (c *CertificateController) Reissue(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	assessment, err := c.AssessmentService.Assessment(uint(id))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	cert, err := c.CertService.Award(assessment)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}
