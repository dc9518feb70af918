package models

// ContactMessage is a contact-form submission. It is stored but never read back.
type ContactMessage struct {
	FullName *string `json:"full_name" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Subject  *string `json:"subject" binding:"required"`
	Message  *string `json:"message" binding:"required"`
}
