package repository

import (
	"context"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

const (
	// DefaultListLimit caps list and search results when the caller gives no limit
	DefaultListLimit = 100

	// MaxListLimit is the largest page a caller may request
	MaxListLimit = 1000
)

// InvoiceRepository defines the interface for invoice data storage operations
type InvoiceRepository interface {
	// CreateInvoice stores a fully computed invoice
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error

	// GetInvoiceByID retrieves an invoice by its ID
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, newest first
	ListInvoices(ctx context.Context, offset, limit int) ([]domain.Invoice, error)

	// SearchInvoices matches query case-insensitively against the customer name,
	// the customer mobile and the invoice number, newest first
	SearchInvoices(ctx context.Context, query string, limit int) ([]domain.Invoice, error)

	// DeleteInvoice removes an invoice; domain.ErrNotFound when nothing was deleted
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// LastInvoiceNumber returns the highest stored invoice number, found is false on an empty store
	LastInvoiceNumber(ctx context.Context) (number string, found bool, err error)
}
