package contact

type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Email   string `json:"email" validate:"required,max=256"`
	Subject string `json:"subject" validate:"required,min=1,max=256"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}
