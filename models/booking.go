package models

// DefaultBookingStatus is assigned when a booking request carries no status.
const DefaultBookingStatus = "pending"

// Booking is an appointment request. ServiceTitle is not checked against the catalog and
// PreferredDate is kept as submitted.
//
// Required text fields are pointers so that an empty string counts as present.
type Booking struct {
	FullName      *string `json:"full_name" binding:"required"`
	Phone         *string `json:"phone" binding:"required"`
	Email         *string `json:"email" binding:"omitempty,email"`
	ServiceTitle  *string `json:"service_title" binding:"required"`
	PreferredDate *string `json:"preferred_date" binding:"required"` // YYYY-MM-DD
	PreferredTime *string `json:"preferred_time" binding:"required"` // e.g. 14:30
	Notes         *string `json:"notes"`
	Status        *string `json:"status" binding:"required"`
}

// NewBooking returns a Booking with defaults applied. Request bodies are decoded on top of it,
// so an explicit "status": null clears the default and fails validation.
func NewBooking() Booking {
	return Booking{Status: strPtr(DefaultBookingStatus)}
}
