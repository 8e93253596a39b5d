// Package view derives the filtered lists and counters shown on the
// dashboard pages. Every function here is pure: inputs are never mutated
// and output order follows input order.
package view

import (
	"strings"

	"planner/internal/domain/entity"
)

// StatusFilter selects guests by RSVP status.
type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusPending    StatusFilter = StatusFilter(entity.RSVPPending)
	StatusAccepted   StatusFilter = StatusFilter(entity.RSVPAccepted)
	StatusDeclined   StatusFilter = StatusFilter(entity.RSVPDeclined)
	StatusMaybe      StatusFilter = StatusFilter(entity.RSVPMaybe)
	StatusNotInvited StatusFilter = "not_invited"
)

// IsValid reports whether f is a known status filter. The empty filter counts as all.
func (f StatusFilter) IsValid() bool {
	switch f {
	case "", StatusAll, StatusPending, StatusAccepted, StatusDeclined, StatusMaybe, StatusNotInvited:
		return true
	}

	return false
}

// SentFilter selects guests by whether their invitation went out.
type SentFilter string

const (
	SentAll SentFilter = "all"
	SentYes SentFilter = "sent"
	SentNo  SentFilter = "not_sent"
)

// IsValid reports whether f is a known sent filter. The empty filter counts as all.
func (f SentFilter) IsValid() bool {
	switch f {
	case "", SentAll, SentYes, SentNo:
		return true
	}

	return false
}

// GuestFilter is the combined criteria of the guest list page.
type GuestFilter struct {
	Search string       `json:"search" query:"search"`
	Status StatusFilter `json:"status" query:"status"`
	Sent   SentFilter   `json:"sent" query:"sent"`
}

// GuestStats are the counters above the guest list.
type GuestStats struct {
	Total             int `json:"total"`
	Accepted          int `json:"accepted"`
	Pending           int `json:"pending"`
	Declined          int `json:"declined"`
	Maybe             int `json:"maybe"`
	NotInvited        int `json:"notInvited"`
	PlusOnes          int `json:"plusOnes"`
	ExpectedAttendees int `json:"expectedAttendees"`
}

// GuestView is a filtered list together with the stats of the full list.
type GuestView struct {
	Guests []entity.Guest `json:"guests"`
	Stats  GuestStats     `json:"stats"`
}

// FilterGuests returns the guests matching every criterion of f.
func FilterGuests(guests []entity.Guest, f GuestFilter) []entity.Guest {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.Guest, 0, len(guests))

	for _, g := range guests {
		if matchesGuestSearch(g, needle) && matchesStatus(g, f.Status) && matchesSent(g, f.Sent) {
			out = append(out, g)
		}
	}

	return out
}

func matchesGuestSearch(g entity.Guest, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(g.Name), needle) {
		return true
	}
	if g.Email != "" && strings.Contains(strings.ToLower(g.Email), needle) {
		return true
	}

	return strings.Contains(strings.ToLower(g.TelegramUsername), needle)
}

func matchesStatus(g entity.Guest, f StatusFilter) bool {
	switch f {
	case "", StatusAll:
		return true
	case StatusNotInvited:
		return !g.Invited
	}

	return StatusFilter(g.EffectiveRSVPStatus()) == f
}

func matchesSent(g entity.Guest, f SentFilter) bool {
	switch f {
	case SentYes:
		return g.Invited
	case SentNo:
		return !g.Invited
	}

	return true
}

// ComputeGuestStats counts the stored statuses as they are. A guest with a
// missing or unknown status is counted in Total and in none of the four
// status buckets.
func ComputeGuestStats(guests []entity.Guest) GuestStats {
	stats := GuestStats{Total: len(guests)}

	for _, g := range guests {
		switch g.RSVPStatus {
		case entity.RSVPAccepted:
			stats.Accepted++
			stats.ExpectedAttendees++
			if g.PlusOne {
				stats.ExpectedAttendees++
			}
		case entity.RSVPPending:
			stats.Pending++
		case entity.RSVPDeclined:
			stats.Declined++
		case entity.RSVPMaybe:
			stats.Maybe++
		}
		if !g.Invited {
			stats.NotInvited++
		}
		if g.PlusOne {
			stats.PlusOnes++
		}
	}

	return stats
}

// BuildGuestView filters guests with f and computes stats over the unfiltered list.
func BuildGuestView(guests []entity.Guest, f GuestFilter) GuestView {
	return GuestView{
		Guests: FilterGuests(guests, f),
		Stats:  ComputeGuestStats(guests),
	}
}
