package repository

import (
	"context"

	"mobilicity/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error)
	List(ctx context.Context) ([]*entity.Report, error)
}
