package entity

import "time"

// RSVPInvitation is the public view behind an RSVP link.
type RSVPInvitation struct {
	GuestName    string     `json:"guestName"`
	WeddingTitle string     `json:"weddingTitle"`
	WeddingDate  time.Time  `json:"weddingDate"`
	Venue        string     `json:"venue"`
	RSVPStatus   RSVPStatus `json:"rsvpStatus"`
	PlusOne      bool       `json:"plusOne"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
}

// RSVPSubmission is a guest's reply.
type RSVPSubmission struct {
	Status     RSVPStatus `json:"status" validate:"required,oneof=accepted declined maybe"`
	PlusOne    bool       `json:"plusOne"`
	GuestCount int        `json:"guestCount" validate:"gte=0,lte=20"`
	Message    string     `json:"message,omitempty" validate:"max=1000"`
	Dietary    string     `json:"dietary,omitempty" validate:"max=500"`
}
