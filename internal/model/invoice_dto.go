package model

import (
	"time"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

// ShopDetailsRequest represents the seller block of a request.
// ID and CreatedAt are optional so a saved shop can be sent back as-is.
type ShopDetailsRequest struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name" binding:"required"`
	Address   string     `json:"address" binding:"required"`
	GSTNumber string     `json:"gst_number" binding:"required"`
	State     string     `json:"state" binding:"required"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" swaggertype:"string" format:"date-time"`
}

// CustomerDetailsRequest represents the buyer block of an invoice request
type CustomerDetailsRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	Address string `json:"address,omitempty"`
	State   string `json:"state,omitempty"`
}

// ProductItemRequest represents a single product line of an invoice request.
// Quantity and UnitRate are pointers so that an explicit zero is accepted.
type ProductItemRequest struct {
	Name               string   `json:"name" binding:"required"`
	Quantity           *int     `json:"quantity" binding:"required"`
	UnitRate           *float64 `json:"unit_rate" binding:"required"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" example:"0"`
	GSTRate            *float64 `json:"gst_rate,omitempty" example:"18"`
}

// CreateInvoiceRequest represents the body of POST /api/invoices
type CreateInvoiceRequest struct {
	ShopDetails     ShopDetailsRequest     `json:"shop_details"`
	CustomerDetails CustomerDetailsRequest `json:"customer_details"`
	Products        []ProductItemRequest   `json:"products" binding:"required,dive"`
	ReverseCharge   bool                   `json:"reverse_charge"`
	QRCodeBase64    *string                `json:"qr_code_base64,omitempty"`
}

// ToDomain converts the shop block into a domain shop snapshot
func (r ShopDetailsRequest) ToDomain() domain.Shop {
	shop := domain.Shop{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		GSTNumber: r.GSTNumber,
		State:     r.State,
		Phone:     r.Phone,
	}
	if r.CreatedAt != nil {
		shop.CreatedAt = *r.CreatedAt
	}
	return shop
}

// ToDomain applies the line item defaults: no discount and 18% GST
func (r ProductItemRequest) ToDomain() domain.LineItem {
	item := domain.LineItem{
		Name:    r.Name,
		GSTRate: domain.DefaultGSTRate,
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.UnitRate != nil {
		item.UnitRate = *r.UnitRate
	}
	if r.DiscountPercentage != nil {
		item.DiscountPercentage = *r.DiscountPercentage
	}
	if r.GSTRate != nil {
		item.GSTRate = *r.GSTRate
	}
	return item
}

// ToDomain converts the request into the service input
func (r CreateInvoiceRequest) ToDomain() domain.InvoiceInput {
	products := make([]domain.LineItem, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, p.ToDomain())
	}

	return domain.InvoiceInput{
		ShopDetails: r.ShopDetails.ToDomain(),
		CustomerDetails: domain.Customer{
			Name:    r.CustomerDetails.Name,
			Mobile:  r.CustomerDetails.Mobile,
			Address: r.CustomerDetails.Address,
			State:   r.CustomerDetails.State,
		},
		Products:      products,
		ReverseCharge: r.ReverseCharge,
		QRCodeBase64:  r.QRCodeBase64,
	}
}
