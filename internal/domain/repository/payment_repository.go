package repository

import (
	"context"

	"mobilicity/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Payment, error)
}
