package domain

import (
	"time"
)

// DefaultGSTRate is applied to a line item when the client omits gst_rate (9% CGST + 9% SGST)
const DefaultGSTRate = 18.0

// Customer is the buyer snapshot printed on an invoice
type Customer struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address,omitempty"`
	State   string `json:"state,omitempty"`
}

// LineItem represents a single product line on an invoice
type LineItem struct {
	Name               string  `json:"name"`
	Quantity           int     `json:"quantity"`
	UnitRate           float64 `json:"unit_rate"`
	DiscountPercentage float64 `json:"discount_percentage"`
	GSTRate            float64 `json:"gst_rate"`
}

// InvoiceTotals holds the aggregate amounts derived from the line items.
// Every field except FinalAmount is rounded to two fractional digits.
type InvoiceTotals struct {
	TotalTaxableValue Amount `json:"total_taxable_value"`
	TotalCGST         Amount `json:"total_cgst"`
	TotalSGST         Amount `json:"total_sgst"`
	TotalTax          Amount `json:"total_tax"`
	RoundOff          Amount `json:"round_off"`
	FinalAmount       int64  `json:"final_amount"`
}

// Invoice represents the core domain entity for a GST tax invoice
type Invoice struct {
	ID              string     `json:"id"`
	InvoiceNumber   string     `json:"invoice_number"`
	ShopDetails     Shop       `json:"shop_details"`
	CustomerDetails Customer   `json:"customer_details"`
	Products        []LineItem `json:"products"`
	ReverseCharge   bool       `json:"reverse_charge"`
	QRCodeBase64    *string    `json:"qr_code_base64"`

	InvoiceTotals

	AmountInWords string    `json:"amount_in_words"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InvoiceInput carries the client-supplied part of an invoice
type InvoiceInput struct {
	ShopDetails     Shop
	CustomerDetails Customer
	Products        []LineItem
	ReverseCharge   bool
	QRCodeBase64    *string
}
