package entity

import (
	"time"
)

type Payment struct {
	ID            string    `json:"id" firestore:"id"`
	BookingID     string    `json:"booking_id" firestore:"bookingId"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	BuyerEmail    string    `json:"buyer_email" firestore:"buyerEmail"`
	TransactionID string    `json:"transaction_id" firestore:"transactionId"`
	Price         float64   `json:"price" firestore:"price"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
