package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Order statuses as stored in ScyllaDB.
const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderDraft is the immutable snapshot built at checkout submission and
// handed to the confirmation step through the one-shot Redis slot.
type OrderDraft struct {
	Items            []CartItem `json:"items"`
	BuyerName        string     `json:"buyerName"`
	BuyerPhone       string     `json:"buyerPhone"`
	DeliveryLocation string     `json:"deliveryLocation"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentAmount    float64    `json:"paymentAmount"`
	Total            float64    `json:"total"`
}

type Order struct {
	ID               gocql.UUID `json:"id"`
	VendorID         gocql.UUID `json:"vendorId"`
	BuyerName        string     `json:"buyerName"`
	BuyerPhone       string     `json:"buyerPhone"`
	DeliveryLocation string     `json:"deliveryLocation"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentAmount    float64    `json:"paymentAmount"`
	Total            float64    `json:"total"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}
