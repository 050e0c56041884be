package usecase

import (
	"context"
	"time"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateBookingInput struct {
	ProductID string
}

type BookingResult struct {
	Acknowledged bool
	Message      string
	Booking      *entity.Booking
}

// CreateBooking records a purchase intent. Duplicate (buyer, product)
// pairs are rejected by a pre-check query; the check and the insert are
// two separate operations, so concurrent identical requests can slip
// past the check and both insert.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, buyerEmail string, input CreateBookingInput) (*BookingResult, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.Available {
		return &BookingResult{
			Acknowledged: false,
			Message:      "This product has already been sold",
		}, nil
	}

	booked, err := uc.bookingRepo.ExistsForBuyerAndProduct(ctx, buyerEmail, input.ProductID)
	if err != nil {
		return nil, err
	}
	if booked {
		return &BookingResult{
			Acknowledged: false,
			Message:      "You already booked this product",
		}, nil
	}

	buyer, err := uc.userRepo.GetByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, errors.BadRequest("Invalid buyer", err)
	}

	booking := &entity.Booking{
		BuyerEmail:  buyer.Email,
		BuyerName:   buyer.Name,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Paid:        false,
		CreatedAt:   time.Now(),
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return &BookingResult{
		Acknowledged: true,
		Message:      "Booking created",
		Booking:      booking,
	}, nil
}

func (uc *BookingUseCase) HasBooking(ctx context.Context, buyerEmail, productID string) (bool, error) {
	return uc.bookingRepo.ExistsForBuyerAndProduct(ctx, buyerEmail, productID)
}

func (uc *BookingUseCase) ListOrders(ctx context.Context, buyerEmail string) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByBuyer(ctx, buyerEmail)
}
