package dto

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Subject *string `json:"subject"`
}

// ContactResponse echoes a contact submission back to the caller.
// Nothing is persisted; this is a placeholder for a future mail-send
// integration.
type ContactResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
