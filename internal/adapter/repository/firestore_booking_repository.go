package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mobilicity/internal/domain/entity"
	"mobilicity/internal/domain/repository"
	"mobilicity/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		doc := r.client.Collection("bookings").NewDoc()
		booking.ID = doc.ID
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("bookings").Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection("bookings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Booking", err)
		}
		return nil, errors.Internal("Failed to get booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}

	return &booking, nil
}

func (r *firestoreBookingRepository) ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error) {
	query := r.client.Collection("bookings").
		Where("buyerEmail", "==", buyerEmail).
		Where("productId", "==", productID).
		Limit(1)
	iter := query.Documents(ctx)
	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to query bookings", err)
	}
	return true, nil
}

func (r *firestoreBookingRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Booking, error) {
	iter := r.client.Collection("bookings").Where("buyerEmail", "==", buyerEmail).Documents(ctx)
	var bookings []*entity.Booking

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *firestoreBookingRepository) MarkPaid(ctx context.Context, id, transactionID string) error {
	_, err := r.client.Collection("bookings").Doc(id).Set(ctx, map[string]interface{}{
		"paid":          true,
		"transactionId": transactionID,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to mark booking paid", err)
	}
	return nil
}

func (r *firestoreBookingRepository) DeleteCompetitors(ctx context.Context, productID, keepBuyerEmail string) (int, error) {
	iter := r.client.Collection("bookings").Where("productId", "==", productID).Documents(ctx)
	deleted := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, errors.Internal("Failed to query competing bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return deleted, errors.Internal("Failed to parse booking data", err)
		}
		if booking.BuyerEmail == keepBuyerEmail {
			continue
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to delete competing booking", err)
		}
		deleted++
	}

	return deleted, nil
}
