package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilicity/internal/domain/entity"
)

func TestSettleTwoCompetingBookings(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	productRepo := newFakeProductRepo()

	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:        "phone-1",
		Name:      "Pixel 6",
		Price:     300,
		Available: true,
	}))
	require.NoError(t, bookingRepo.Create(context.Background(), &entity.Booking{
		ID:         "booking-a",
		BuyerEmail: "a@example.com",
		ProductID:  "phone-1",
		Price:      300,
	}))
	require.NoError(t, bookingRepo.Create(context.Background(), &entity.Booking{
		ID:         "booking-b",
		BuyerEmail: "b@example.com",
		ProductID:  "phone-1",
		Price:      300,
	}))

	uc := NewSettlementUseCase(paymentRepo, bookingRepo, productRepo)

	payment, err := uc.Settle(context.Background(), SettleInput{
		BookingID:     "booking-a",
		ProductID:     "phone-1",
		BuyerEmail:    "a@example.com",
		TransactionID: "txn-123",
		Price:         300,
	})
	require.NoError(t, err)
	assert.Equal(t, "txn-123", payment.TransactionID)

	// Exactly one payment recorded.
	payments, err := paymentRepo.ListByProduct(context.Background(), "phone-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	// The winning booking is paid, the competitor is gone.
	remaining := bookingRepo.all()
	require.Len(t, remaining, 1)
	assert.Equal(t, "a@example.com", remaining[0].BuyerEmail)
	assert.True(t, remaining[0].Paid)
	assert.Equal(t, "txn-123", remaining[0].TransactionID)

	// The product is off the market.
	product, err := productRepo.GetByID(context.Background(), "phone-1")
	require.NoError(t, err)
	assert.False(t, product.Available)
}

func TestSettleRejectsMismatchedBooking(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	productRepo := newFakeProductRepo()

	require.NoError(t, bookingRepo.Create(context.Background(), &entity.Booking{
		ID:         "booking-a",
		BuyerEmail: "a@example.com",
		ProductID:  "phone-1",
	}))

	uc := NewSettlementUseCase(paymentRepo, bookingRepo, productRepo)

	_, err := uc.Settle(context.Background(), SettleInput{
		BookingID:  "booking-a",
		ProductID:  "phone-2",
		BuyerEmail: "a@example.com",
	})
	assert.Error(t, err)

	_, err = uc.Settle(context.Background(), SettleInput{
		BookingID:  "booking-a",
		ProductID:  "phone-1",
		BuyerEmail: "b@example.com",
	})
	assert.Error(t, err)
}

func TestSettleRejectsAlreadyPaidBooking(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	productRepo := newFakeProductRepo()

	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:        "phone-1",
		Available: true,
	}))
	require.NoError(t, bookingRepo.Create(context.Background(), &entity.Booking{
		ID:         "booking-a",
		BuyerEmail: "a@example.com",
		ProductID:  "phone-1",
	}))

	uc := NewSettlementUseCase(paymentRepo, bookingRepo, productRepo)

	_, err := uc.Settle(context.Background(), SettleInput{
		BookingID:  "booking-a",
		ProductID:  "phone-1",
		BuyerEmail: "a@example.com",
	})
	require.NoError(t, err)

	_, err = uc.Settle(context.Background(), SettleInput{
		BookingID:  "booking-a",
		ProductID:  "phone-1",
		BuyerEmail: "a@example.com",
	})
	assert.Error(t, err)

	payments, err := paymentRepo.ListByProduct(context.Background(), "phone-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestSettleGeneratesTransactionIDWhenMissing(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	productRepo := newFakeProductRepo()

	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:        "phone-1",
		Available: true,
	}))
	require.NoError(t, bookingRepo.Create(context.Background(), &entity.Booking{
		ID:         "booking-a",
		BuyerEmail: "a@example.com",
		ProductID:  "phone-1",
	}))

	uc := NewSettlementUseCase(paymentRepo, bookingRepo, productRepo)

	payment, err := uc.Settle(context.Background(), SettleInput{
		BookingID:  "booking-a",
		ProductID:  "phone-1",
		BuyerEmail: "a@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.TransactionID)
}
