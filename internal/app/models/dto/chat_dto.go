package dto

// ChatRequest is the JSON body of POST /chat. TopicID filters notes by
// subject title; empty or "general" means every stored note.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
	TopicID  string `json:"topic_id"`
}

// ChatResponse carries the completion service's answer text, or the fixed
// fallback when no notes matched.
type ChatResponse struct {
	Answer string `json:"answer"`
}
