package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/middleware"
)

// ApprovalController handles admin approval of notes and subjects
type ApprovalController struct {
	approvalService services.ApprovalService
}

// NewApprovalController creates a new ApprovalController
func NewApprovalController(approvalService services.ApprovalService) *ApprovalController {
	return &ApprovalController{approvalService: approvalService}
}

// Approve godoc
// @Summary Approve a note or subject
// @Description Flip the approval flag on an item; kind must be "notes" or "subjects"
// @Tags admin
// @Produce json
// @Param kind path string true "Item kind" Enums(notes, subjects)
// @Param item_id path string true "Item document ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /approve/{kind}/{item_id} [put]
func (c *ApprovalController) Approve(ctx *gin.Context) {
	kind := ctx.Param("kind")
	itemID := ctx.Param("item_id")

	if err := c.approvalService.Approve(ctx.Request.Context(), kind, itemID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}
