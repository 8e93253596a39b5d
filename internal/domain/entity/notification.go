package entity

import "time"

// NotificationType tags what happened.
type NotificationType string

const (
	NotificationRSVP             NotificationType = "rsvp"
	NotificationGuestAdded       NotificationType = "guest_added"
	NotificationInvitationSent   NotificationType = "invitation_sent"
	NotificationInvitationFailed NotificationType = "invitation_failed"
	NotificationMessage          NotificationType = "message"
	NotificationSystem           NotificationType = "system"
)

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationRSVP, NotificationGuestAdded, NotificationInvitationSent,
		NotificationInvitationFailed, NotificationMessage, NotificationSystem:
		return true
	}

	return false
}

// Notification is a server-created event shown in the inbox.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Data        map[string]any   `json:"data,omitempty"` // Opaque payload, shape depends on Type.
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"createdAt"`
}
