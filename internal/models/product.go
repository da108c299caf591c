package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID            gocql.UUID `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Image         string     `json:"image"`
	Category      string     `json:"category"`
	VendorID      gocql.UUID `json:"vendorId"`
	Available     bool       `json:"available"`
	AvailableFrom string     `json:"availableFrom,omitempty"`
	AvailableTo   string     `json:"availableTo,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
