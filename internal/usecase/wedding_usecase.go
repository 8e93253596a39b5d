package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// Countdown is the time left until the wedding day.
type Countdown struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	// Days is negative once the date has passed.
	Days int `json:"days"`
}

// WeddingUsecase defines the wedding setup use cases.
type WeddingUsecase interface {
	GetWedding(ctx context.Context) (*entity.Wedding, error)

	// SetupWedding creates the account's wedding. It is done once.
	SetupWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error)

	UpdateWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error)

	// Countdown counts whole calendar days from now to the wedding date.
	Countdown(ctx context.Context, now time.Time) (*Countdown, error)
}
