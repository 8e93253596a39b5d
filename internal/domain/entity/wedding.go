package entity

import "time"

// Wedding is the single wedding aggregate owned by an account.
type Wedding struct {
	ID           string          `json:"id"`
	Title        string          `json:"title" validate:"required,max=200"`
	Date         time.Time       `json:"date" validate:"required"`
	Venue        string          `json:"venue" validate:"max=200"`
	VenueAddress string          `json:"venueAddress,omitempty"`
	Theme        string          `json:"theme,omitempty"`
	PrimaryColor string          `json:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	Description  string          `json:"description,omitempty"`
	Schedule     []ScheduleEvent `json:"schedule"`
	Gallery      []string        `json:"gallery"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// EventStatus is the progress of one schedule item.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
)

// IsValid reports whether s is a known event status.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventPending, EventConfirmed, EventCompleted:
		return true
	}

	return false
}

// Next returns the status that usually follows s. Completed stays completed.
func (s EventStatus) Next() EventStatus {
	switch s {
	case EventPending:
		return EventConfirmed
	case EventConfirmed, EventCompleted:
		return EventCompleted
	}

	return EventPending
}

// ScheduleEvent is one item of the wedding-day timeline.
type ScheduleEvent struct {
	ID          string      `json:"id,omitempty"`
	Time        string      `json:"time" validate:"required,clock"`
	Event       string      `json:"event" validate:"required,max=200"`
	Location    string      `json:"location,omitempty"`
	Description string      `json:"description,omitempty"`
	Responsible string      `json:"responsible,omitempty"`
	Status      EventStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed"`
}
