package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/controllers"
)

// SetupRouter configures all application routes. The paths are the
// public contract the frontend depends on; no version prefix.
func SetupRouter(
	router *gin.Engine,
	noteController *controllers.NoteController,
	subjectController *controllers.SubjectController,
	chatController *controllers.ChatController,
	approvalController *controllers.ApprovalController,
	subscriptionController *controllers.SubscriptionController,
) {
	router.GET("/health", controllers.HealthCheck)

	// Note routes
	router.POST("/upload", noteController.Upload)
	router.POST("/create-note", noteController.CreateNote)
	router.GET("/my-notes/:user_id", noteController.GetMyNotes)
	router.DELETE("/notes/:note_id", noteController.DeleteNote)

	// Chat route
	router.POST("/chat", chatController.Chat)

	// Subject routes
	router.POST("/request-subject", subjectController.RequestSubject)
	router.GET("/subjects", subjectController.GetSubjects)
	router.DELETE("/subjects/:subject_id", subjectController.DeleteSubject)

	// Admin routes
	router.GET("/admin/stats", noteController.AdminStats)
	router.PUT("/approve/:kind/:item_id", approvalController.Approve)

	// Subscription routes
	router.POST("/subscribe", subscriptionController.Subscribe)
	router.GET("/subscriptions/:user_id", subscriptionController.GetSubscriptions)
}
