package entity

import "time"

// RSVPStatus is a guest's reply to an invitation.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
	RSVPMaybe    RSVPStatus = "maybe"
)

// IsValid reports whether s is one of the known RSVP statuses.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined, RSVPMaybe:
		return true
	}

	return false
}

// InvitationMethod is the channel an invitation is delivered through.
type InvitationMethod string

const (
	InvitationTelegram InvitationMethod = "telegram"
	InvitationEmail    InvitationMethod = "email"
	InvitationWhatsApp InvitationMethod = "whatsapp"
)

// IsValid reports whether m is a supported delivery channel.
func (m InvitationMethod) IsValid() bool {
	switch m {
	case InvitationTelegram, InvitationEmail, InvitationWhatsApp:
		return true
	}

	return false
}

// Guest is one invitee of the wedding.
type Guest struct {
	ID               string           `json:"id"`                         // Remote identifier assigned by the API.
	Name             string           `json:"name"`                       // Display name.
	Email            string           `json:"email,omitempty"`            // Optional contact email.
	TelegramUsername string           `json:"telegramUsername,omitempty"` // Messaging handle.
	Phone            string           `json:"phone,omitempty"`            // Optional phone number in E.164.
	Invited          bool             `json:"invited"`                    // Whether an invitation has been sent.
	RSVPStatus       RSVPStatus       `json:"rsvpStatus,omitempty"`       // Reply, empty until the API assigns one.
	InvitationMethod InvitationMethod `json:"invitationMethod,omitempty"` // Delivery channel.
	PlusOne          bool             `json:"plusOne"`                    // Whether the guest may bring a companion.
	RSVPToken        string           `json:"rsvpToken,omitempty"`        // Token of the public RSVP link.
	InvitationSentAt *time.Time       `json:"invitationSentAt,omitempty"` // When the invitation went out.
	RSVPSubmittedAt  *time.Time       `json:"rsvpSubmittedAt,omitempty"`  // When the guest replied.
	CreatedAt        time.Time        `json:"createdAt"`

	// Provisional marks local state that the server has not confirmed yet.
	Provisional bool `json:"-"`
}

// EffectiveRSVPStatus treats a missing or unknown status as pending.
func (g Guest) EffectiveRSVPStatus() RSVPStatus {
	if g.RSVPStatus.IsValid() {
		return g.RSVPStatus
	}

	return RSVPPending
}

// NewGuest is the input for creating a guest.
type NewGuest struct {
	Name             string           `json:"name" validate:"required,max=100"`
	Email            string           `json:"email,omitempty" validate:"omitempty,email"`
	TelegramUsername string           `json:"telegramUsername,omitempty" validate:"omitempty,telegram"`
	Phone            string           `json:"phone,omitempty" validate:"omitempty,e164"`
	InvitationMethod InvitationMethod `json:"invitationMethod" validate:"omitempty,oneof=telegram email whatsapp"`
	PlusOne          bool             `json:"plusOne"`
}

// InvitationOutcome is the server's verdict for one guest of a bulk send.
type InvitationOutcome struct {
	GuestID          string     `json:"guestId"`
	Success          bool       `json:"success"`
	Error            string     `json:"error,omitempty"`
	InvitationSentAt *time.Time `json:"invitationSentAt,omitempty"`
}

// InvitationBatchResult is the server response to a bulk send.
// Results is empty when the server only acknowledges the batch as a whole.
type InvitationBatchResult struct {
	Sent    int                 `json:"sent"`
	Failed  int                 `json:"failed"`
	Results []InvitationOutcome `json:"results,omitempty"`
}
