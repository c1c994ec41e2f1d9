package dto

// UploadNoteForm binds the multipart fields of POST /upload. The file part
// is handled separately by the controller.
type UploadNoteForm struct {
	Title         string `form:"title" binding:"required"`
	Subject       string `form:"subject" binding:"required"`
	Course        string `form:"course"`
	Topic         string `form:"topic"`
	Tags          string `form:"tags"` // comma-separated, stored as a list
	AcademicLevel string `form:"academic_level"`
	Description   string `form:"description"`
	YoutubeURL    string `form:"youtube_url"`
	UploaderID    string `form:"uploader_id" binding:"required"`
}

// CreateNoteRequest is the JSON body of POST /create-note for notes
// authored directly online.
type CreateNoteRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Course        string `json:"course"`
	Topic         string `json:"topic"`
	Tags          string `json:"tags"`
	AcademicLevel string `json:"academic_level"`
	UploaderID    string `json:"uploader_id" binding:"required"`
}

// UploadResponse is the POST /upload response body.
type UploadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse carries a bare status, used by POST /create-note and
// other side-effect endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}
