package view

import (
	"strings"

	"planner/internal/domain/entity"
)

// filterAll is the select value the dashboard sends for "any".
const filterAll = "all"

func isAny[T ~string](v T) bool {
	return v == "" || v == filterAll
}

// GiftFilter is the criteria of the registry page. Empty or "all" fields match everything.
type GiftFilter struct {
	Search   string              `json:"search" query:"search"`
	Status   entity.GiftStatus   `json:"status" query:"status"`
	Priority entity.GiftPriority `json:"priority" query:"priority"`
}

// Valid reports whether every set criterion is a known value.
func (f GiftFilter) Valid() bool {
	return (isAny(f.Status) || f.Status.IsValid()) && (isAny(f.Priority) || f.Priority.IsValid())
}

// GiftStats are the registry counters.
type GiftStats struct {
	Total          int     `json:"total"`
	Available      int     `json:"available"`
	Reserved       int     `json:"reserved"`
	Purchased      int     `json:"purchased"`
	TotalValue     float64 `json:"totalValue"`
	PurchasedValue float64 `json:"purchasedValue"`
}

// GiftView is a filtered registry together with the stats of the full registry.
type GiftView struct {
	Gifts []entity.GiftItem `json:"gifts"`
	Stats GiftStats         `json:"stats"`
}

// FilterGifts returns the items matching every criterion of f.
func FilterGifts(gifts []entity.GiftItem, f GiftFilter) []entity.GiftItem {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.GiftItem, 0, len(gifts))

	for _, g := range gifts {
		if needle != "" &&
			!strings.Contains(strings.ToLower(g.Name), needle) &&
			!strings.Contains(strings.ToLower(g.Description), needle) {
			continue
		}
		if !isAny(f.Status) && g.Status != f.Status {
			continue
		}
		if !isAny(f.Priority) && g.Priority != f.Priority {
			continue
		}
		out = append(out, g)
	}

	return out
}

// ComputeGiftStats totals the registry. Values are price times quantity.
func ComputeGiftStats(gifts []entity.GiftItem) GiftStats {
	stats := GiftStats{Total: len(gifts)}

	for _, g := range gifts {
		switch g.Status {
		case entity.GiftAvailable:
			stats.Available++
		case entity.GiftReserved:
			stats.Reserved++
		case entity.GiftPurchased:
			stats.Purchased++
		}
		qty := max(g.Quantity, 1)
		stats.TotalValue += g.Price * float64(qty)
		stats.PurchasedValue += g.Price * float64(min(g.Purchased, qty))
	}

	return stats
}

// BuildGiftView filters gifts with f and computes stats over the unfiltered list.
func BuildGiftView(gifts []entity.GiftItem, f GiftFilter) GiftView {
	return GiftView{
		Gifts: FilterGifts(gifts, f),
		Stats: ComputeGiftStats(gifts),
	}
}
