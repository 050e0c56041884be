package repository

import (
	"context"

	"mobilicity/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error)
	ListAvailableByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	ListAdvertised(ctx context.Context) ([]*entity.Product, error)
	SetAdvertised(ctx context.Context, id string, advertised bool) error
	MarkUnavailable(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
