package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/middleware"
)

// NoteController handles note upload, authoring, listing and deletion
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// Upload godoc
// @Summary Upload a study document
// @Description Upload a document file with note metadata; the note awaits approval
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param title formData string true "Title"
// @Param subject formData string true "Subject"
// @Param uploader_id formData string true "Uploader identity"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (c *NoteController) Upload(ctx *gin.Context) {
	var form dto.UploadNoteForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid upload form")))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file").WithField("file")))
		return
	}

	if err := c.noteService.Upload(ctx.Request.Context(), &form, file); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Status:  "success",
		Message: "Note uploaded and awaiting approval",
	})
}

// CreateNote godoc
// @Summary Create a note authored online
// @Description Store note text authored in the browser; it is rendered to a PDF for display
// @Tags notes
// @Accept json
// @Produce json
// @Param request body dto.CreateNoteRequest true "Note content"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /create-note [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format")))
		return
	}

	if err := c.noteService.CreateAuthored(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// GetMyNotes godoc
// @Summary List the caller's notes
// @Description List every note a user uploaded, approved or not, with document IDs
// @Tags notes
// @Produce json
// @Param user_id path string true "Uploader identity"
// @Success 200 {array} models.StoredNote
// @Failure 500 {object} dto.ErrorResponse
// @Router /my-notes/{user_id} [get]
func (c *NoteController) GetMyNotes(ctx *gin.Context) {
	notes, err := c.noteService.GetByUploader(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Delete one note document; its stored file is kept
// @Tags notes
// @Produce json
// @Param note_id path string true "Note document ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notes/{note_id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	if err := c.noteService.Delete(ctx.Request.Context(), ctx.Param("note_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// AdminStats godoc
// @Summary Admin note dump
// @Description Return the total note count and every stored note, unfiltered
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *NoteController) AdminStats(ctx *gin.Context) {
	stats, err := c.noteService.AdminStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
