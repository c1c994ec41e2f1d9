package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/middleware"
)

// SubjectController handles subject requests, listing and deletion
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// RequestSubject godoc
// @Summary Request a new subject
// @Description Create a subject that stays hidden until an admin approves it
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.RequestSubjectRequest true "Subject details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /request-subject [post]
func (c *SubjectController) RequestSubject(ctx *gin.Context) {
	var req dto.RequestSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")))
		return
	}

	if err := c.subjectService.Request(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// GetSubjects godoc
// @Summary List subjects
// @Description List approved subjects; show_all=true includes pending ones
// @Tags subjects
// @Produce json
// @Param show_all query bool false "Include unapproved subjects"
// @Success 200 {array} models.StoredSubject
// @Failure 500 {object} dto.ErrorResponse
// @Router /subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	showAll, _ := strconv.ParseBool(ctx.Query("show_all"))

	subjects, err := c.subjectService.GetAll(ctx.Request.Context(), showAll)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// DeleteSubject godoc
// @Summary Delete a subject and its notes
// @Description Delete a subject and every note filed under its title; reports how many notes went with it
// @Tags subjects
// @Produce json
// @Param subject_id path string true "Subject document ID"
// @Success 200 {object} dto.DeleteSubjectResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subjects/{subject_id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	deleted, err := c.subjectService.Delete(ctx.Request.Context(), ctx.Param("subject_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteSubjectResponse{
		Status:       "success",
		DeletedCount: deleted,
	})
}
