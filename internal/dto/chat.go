package dto

// ChatRequest is the /api/chat request body.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse wraps the model's text reply.
type ChatResponse struct {
	Response string `json:"response"`
}
