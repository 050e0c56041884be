package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
	"mobilicity/pkg/logger"
)

type SettlementUseCase struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
}

func NewSettlementUseCase(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	productRepo repository.ProductRepository,
) *SettlementUseCase {
	return &SettlementUseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		productRepo: productRepo,
	}
}

type SettleInput struct {
	BookingID     string
	ProductID     string
	BuyerEmail    string
	TransactionID string
	Price         float64
}

// Settle confirms a payment and finalizes the sale in a fixed order:
// record the payment, delete competing bookings, mark the winning booking
// paid, mark the product unavailable.
//
// The four writes are issued sequentially without a storage transaction.
// A failure aborts the remaining steps but does not compensate the ones
// already applied, so a mid-sequence error can leave a payment recorded
// against a product that is still listed as available. Known limitation,
// kept deliberately; see DESIGN.md.
func (uc *SettlementUseCase) Settle(ctx context.Context, input SettleInput) (*entity.Payment, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProductID != input.ProductID || booking.BuyerEmail != input.BuyerEmail {
		return nil, errors.BadRequest("Booking does not match product and buyer", nil)
	}
	if booking.Paid {
		return nil, errors.Conflict("Booking is already paid")
	}

	transactionID := input.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	payment := &entity.Payment{
		BookingID:     input.BookingID,
		ProductID:     input.ProductID,
		BuyerEmail:    input.BuyerEmail,
		TransactionID: transactionID,
		Price:         input.Price,
		CreatedAt:     time.Now(),
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	deleted, err := uc.bookingRepo.DeleteCompetitors(ctx, input.ProductID, input.BuyerEmail)
	if err != nil {
		logger.Error("Settlement %s: payment recorded but competitor cleanup failed: %v", transactionID, err)
		return nil, err
	}
	if deleted > 0 {
		logger.Info("Settlement %s: removed %d competing bookings for product %s", transactionID, deleted, input.ProductID)
	}

	if err := uc.bookingRepo.MarkPaid(ctx, input.BookingID, transactionID); err != nil {
		logger.Error("Settlement %s: failed to mark booking %s paid: %v", transactionID, input.BookingID, err)
		return nil, err
	}

	if err := uc.productRepo.MarkUnavailable(ctx, input.ProductID); err != nil {
		logger.Error("Settlement %s: booking paid but product %s still available: %v", transactionID, input.ProductID, err)
		return nil, err
	}

	return payment, nil
}
