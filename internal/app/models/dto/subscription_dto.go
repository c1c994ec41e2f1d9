package dto

// SubscribeRequest is the JSON body of POST /subscribe. The subject
// metadata is snapshotted onto the subscription record as sent.
type SubscribeRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	SubjectID string `json:"subject_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Code      string `json:"code"`
	Icon      string `json:"icon"`
}
