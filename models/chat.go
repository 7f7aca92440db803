package models

// ChatRequest is a coach chat question with an optional
// "data:image/...;base64,..." attachment.
type ChatRequest struct {
	Question     string `json:"question" binding:"required"`
	ImageDataURL string `json:"image_data_url"`
}

// ChatResponse carries the coach's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}
