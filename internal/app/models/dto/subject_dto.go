package dto

import "github.com/opennotes/backend/internal/app/models"

// RequestSubjectRequest is the JSON body of POST /request-subject.
// Subjects start unapproved and wait for an admin.
type RequestSubjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Field       string `json:"field" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UploaderID  string `json:"uploader_id" binding:"required"`
}

// DeleteSubjectResponse reports how many notes the cascade removed.
type DeleteSubjectResponse struct {
	Status       string `json:"status"`
	DeletedCount int    `json:"deleted_count"`
}

// AdminStatsResponse is the GET /admin/stats body: an unfiltered dump.
type AdminStatsResponse struct {
	TotalNotes int                 `json:"total_notes"`
	AllNotes   []models.StoredNote `json:"all_notes"`
}
