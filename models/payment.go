package models

import "time"

// Payment statuses. A payment is inserted pending and completed once its
// cart items have been removed.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Payment records a checkout confirmed by the payment processor.
type Payment struct {
	ID            ID        `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string    `bson:"email" json:"email" validate:"required,email"`
	Price         float64   `bson:"price" json:"price" validate:"gt=0"`
	TransactionID string    `bson:"transactionId" json:"transactionId" validate:"required"`
	Date          time.Time `bson:"date" json:"date"`
	Quantity      int       `bson:"quantity,omitempty" json:"quantity,omitempty"`
	CartItems     []ID      `bson:"cartItems" json:"cartItems" validate:"required,min=1"`
	MenuItems     []ID      `bson:"menuItems" json:"menuItems"`
	ItemNames     []string  `bson:"itemNames,omitempty" json:"itemNames,omitempty"`
	Status        string    `bson:"status" json:"status"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

// PaymentIntentResponse carries the client-side confirmation secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentResult is the response of POST /payments.
type PaymentResult struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}
