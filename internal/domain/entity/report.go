package entity

import (
	"time"
)

type Report struct {
	ID          string    `json:"id" firestore:"id"`
	BuyerEmail  string    `json:"buyer_email" firestore:"buyerEmail"`
	ProductID   string    `json:"product_id" firestore:"productId"`
	ProductName string    `json:"product_name,omitempty" firestore:"productName,omitempty"`
	Reason      string    `json:"reason,omitempty" firestore:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
