package usecase

import (
	"context"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
	"mobilicity/pkg/logger"
)

type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// ProductWithSeller is a product joined with its seller's user record.
type ProductWithSeller struct {
	*entity.Product
	Seller *entity.User `json:"seller,omitempty"`
}

type CategoryProducts struct {
	Products []*ProductWithSeller `json:"products"`
	Category *entity.Category     `json:"category"`
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// CategoryProducts returns the available products of a category joined
// with their sellers, plus the category document itself.
func (uc *CatalogUseCase) CategoryProducts(ctx context.Context, categoryID string) (*CategoryProducts, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListAvailableByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryProducts{
		Products: uc.joinSellers(ctx, products),
		Category: category,
	}, nil
}

// AdvertisedProducts returns products flagged both advertised and
// available, joined with seller info.
func (uc *CatalogUseCase) AdvertisedProducts(ctx context.Context) ([]*ProductWithSeller, error) {
	products, err := uc.productRepo.ListAdvertised(ctx)
	if err != nil {
		return nil, err
	}
	return uc.joinSellers(ctx, products), nil
}

func (uc *CatalogUseCase) joinSellers(ctx context.Context, products []*entity.Product) []*ProductWithSeller {
	joined := make([]*ProductWithSeller, 0, len(products))
	for _, product := range products {
		seller, err := uc.userRepo.GetByEmail(ctx, product.SellerEmail)
		if err != nil {
			if !errors.Is(err, "NOT_FOUND") {
				logger.Warn("Failed to load seller %s for product %s: %v", product.SellerEmail, product.ID, err)
			}
			seller = nil
		}
		joined = append(joined, &ProductWithSeller{
			Product: product,
			Seller:  seller,
		})
	}
	return joined
}
