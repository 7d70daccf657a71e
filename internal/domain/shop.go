package domain

import (
	"time"
)

// Shop represents the seller registered for GST billing
type Shop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	GSTNumber string    `json:"gst_number"`
	State     string    `json:"state"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ShopInput carries the fields a client may set when registering a shop
type ShopInput struct {
	Name      string
	Address   string
	GSTNumber string
	State     string
	Phone     *string
}
