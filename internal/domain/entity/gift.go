package entity

import "time"

// GiftPriority ranks registry items.
type GiftPriority string

const (
	PriorityHigh   GiftPriority = "high"
	PriorityMedium GiftPriority = "medium"
	PriorityLow    GiftPriority = "low"
)

// IsValid reports whether p is a known priority.
func (p GiftPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}

	return false
}

// GiftStatus is the reservation state of a registry item.
type GiftStatus string

const (
	GiftAvailable GiftStatus = "available"
	GiftReserved  GiftStatus = "reserved"
	GiftPurchased GiftStatus = "purchased"
)

// IsValid reports whether s is a known gift status.
func (s GiftStatus) IsValid() bool {
	switch s {
	case GiftAvailable, GiftReserved, GiftPurchased:
		return true
	}

	return false
}

// GiftItem is one entry of the gift registry.
type GiftItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required,max=200"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price" validate:"gte=0"`
	Currency    string       `json:"currency,omitempty"`
	Priority    GiftPriority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status      GiftStatus   `json:"status" validate:"omitempty,oneof=available reserved purchased"`
	Quantity    int          `json:"quantity" validate:"gte=0"`
	Purchased   int          `json:"purchased" validate:"gte=0"`
	URL         string       `json:"url,omitempty" validate:"omitempty,url"`
	ImageURL    string       `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Remaining is how many units are still wanted.
func (g GiftItem) Remaining() int {
	if g.Purchased >= g.Quantity {
		return 0
	}

	return g.Quantity - g.Purchased
}
