package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const (
	MethodPassword = "password"
	MethodGoogle   = "google"
)

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Method    string    `json:"method" firestore:"method"`
	Role      string    `json:"role" firestore:"role"`
	Verified  bool      `json:"verified" firestore:"verified"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
