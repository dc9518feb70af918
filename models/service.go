package models

// Service is a salon offering shown on the public website.
type Service struct {
	Title           *string  `json:"title" binding:"required"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"required,min=0"` // EUR
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=0"`
	Category        *string  `json:"category"`
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// Text returns the value behind an optional or pointer-typed text field, or "" when it is nil.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DefaultServices returns the services seeded into an empty catalog.
func DefaultServices() []Service {
	return []Service{
		{
			Title:           strPtr("Haircut & Styling"),
			Description:     strPtr("Prerje profesionale, stilim dhe këshillim personal."),
			Price:           floatPtr(25.0),
			DurationMinutes: intPtr(45),
			Category:        strPtr("Hair"),
		},
		{
			Title:           strPtr("Manicure & Gel"),
			Description:     strPtr("Manikyr me gel, forma natyrale dhe ngjyra premium."),
			Price:           floatPtr(20.0),
			DurationMinutes: intPtr(60),
			Category:        strPtr("Nails"),
		},
		{
			Title:           strPtr("Facial Glow"),
			Description:     strPtr("Trajtim fytyre për lëkurë të shëndetshme dhe të ndritshme."),
			Price:           floatPtr(35.0),
			DurationMinutes: intPtr(50),
			Category:        strPtr("Skin"),
		},
	}
}
