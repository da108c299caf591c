package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Vendor struct {
	ID              gocql.UUID `json:"id"`
	UserID          gocql.UUID `json:"userId"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	WhatsappNumber  string     `json:"whatsappNumber"`
	Description     string     `json:"description,omitempty"`
	StudentID       string     `json:"studentId,omitempty"`
	Verified        bool       `json:"verified"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	IsPromoted      bool       `json:"isPromoted"`
	TotalSales      float64    `json:"totalSales"`
	TotalOrders     int        `json:"totalOrders"`
	Rating          float64    `json:"rating"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}
