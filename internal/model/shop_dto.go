package model

import "github.com/ridwanfathin/gst-billing-service/internal/domain"

// CreateShopRequest represents the body of POST /api/shop
type CreateShopRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	GSTNumber string  `json:"gst_number" binding:"required"`
	State     string  `json:"state" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
}

// ToDomain converts the request into the service input
func (r CreateShopRequest) ToDomain() domain.ShopInput {
	return domain.ShopInput{
		Name:      r.Name,
		Address:   r.Address,
		GSTNumber: r.GSTNumber,
		State:     r.State,
		Phone:     r.Phone,
	}
}
