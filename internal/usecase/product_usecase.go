package usecase

import (
	"context"
	"time"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

type CreateListingInput struct {
	CategoryID  string
	Name        string
	Price       float64
	Condition   string
	Location    string
	Phone       string
	Description string
	ImageURL    string
}

// CreateListing creates a product owned by the authenticated seller. The
// owner email always comes from the verified token, never from the body.
func (uc *ProductUseCase) CreateListing(ctx context.Context, sellerEmail string, input CreateListingInput) (*entity.Product, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	seller, err := uc.userRepo.GetByEmail(ctx, sellerEmail)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	product := &entity.Product{
		SellerEmail: seller.Email,
		SellerName:  seller.Name,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Price:       input.Price,
		Condition:   input.Condition,
		Location:    input.Location,
		Phone:       input.Phone,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Available:   true,
		Advertised:  false,
		PostedAt:    time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	return uc.productRepo.ListBySeller(ctx, sellerEmail)
}

// SetAdvertised toggles the advertise flag. The stored record's owner is
// checked against the caller before the write.
func (uc *ProductUseCase) SetAdvertised(ctx context.Context, id, sellerEmail string, advertised bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.SellerEmail != sellerEmail {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	if err := uc.productRepo.SetAdvertised(ctx, id, advertised); err != nil {
		return nil, err
	}

	product.Advertised = advertised
	return product, nil
}

func (uc *ProductUseCase) DeleteListing(ctx context.Context, id, sellerEmail string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.SellerEmail != sellerEmail {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

// RemoveListing deletes a product without an ownership check, for admin
// moderation of reported items.
func (uc *ProductUseCase) RemoveListing(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}
