package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	SellerEmail string    `json:"seller_email" firestore:"sellerEmail"`
	SellerName  string    `json:"seller_name" firestore:"sellerName"`
	CategoryID  string    `json:"category_id" firestore:"categoryId"`
	Name        string    `json:"name" firestore:"name"`
	Price       float64   `json:"price" firestore:"price"`
	Condition   string    `json:"condition,omitempty" firestore:"condition,omitempty"`
	Location    string    `json:"location,omitempty" firestore:"location,omitempty"`
	Phone       string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Available   bool      `json:"available" firestore:"available"`
	Advertised  bool      `json:"advertised" firestore:"advertised"`
	PostedAt    time.Time `json:"posted_at" firestore:"postedAt"`
}
