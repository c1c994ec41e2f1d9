package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/middleware"
)

// SubscriptionController handles per-user subject subscriptions
type SubscriptionController struct {
	subscriptionService services.SubscriptionService
}

// NewSubscriptionController creates a new SubscriptionController
func NewSubscriptionController(subscriptionService services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// Subscribe godoc
// @Summary Subscribe a user to a subject
// @Description Record a snapshot of the subject's metadata under the user
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscription details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subscribe [post]
func (c *SubscriptionController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")))
		return
	}

	if err := c.subscriptionService.Subscribe(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// GetSubscriptions godoc
// @Summary List a user's subscriptions
// @Tags subscriptions
// @Produce json
// @Param user_id path string true "User identity"
// @Success 200 {array} models.Subscription
// @Failure 500 {object} dto.ErrorResponse
// @Router /subscriptions/{user_id} [get]
func (c *SubscriptionController) GetSubscriptions(ctx *gin.Context) {
	subs, err := c.subscriptionService.GetByUser(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subs)
}
