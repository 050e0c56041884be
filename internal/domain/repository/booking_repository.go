package repository

import (
	"context"

	"mobilicity/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) error
	// DeleteCompetitors removes every booking for the product except those
	// belonging to keepBuyerEmail, returning how many were removed.
	DeleteCompetitors(ctx context.Context, productID, keepBuyerEmail string) (int, error)
}
