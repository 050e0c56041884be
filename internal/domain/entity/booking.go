package entity

import (
	"time"
)

type Booking struct {
	ID            string    `json:"id" firestore:"id"`
	BuyerEmail    string    `json:"buyer_email" firestore:"buyerEmail"`
	BuyerName     string    `json:"buyer_name" firestore:"buyerName"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	ProductName   string    `json:"product_name" firestore:"productName"`
	Price         float64   `json:"price" firestore:"price"`
	Paid          bool      `json:"paid" firestore:"paid"`
	TransactionID string    `json:"transaction_id,omitempty" firestore:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
