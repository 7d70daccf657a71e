package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

// MemoryRepository keeps shops and invoices in process memory.
// It implements both ShopRepository and InvoiceRepository and is used by
// tests and by STORAGE_DRIVER=memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	shops    map[string]storedShop
	invoices map[string]storedInvoice
	seq      int64
}

type storedShop struct {
	shop domain.Shop
	seq  int64
}

type storedInvoice struct {
	invoice domain.Invoice
	seq     int64
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		shops:    make(map[string]storedShop),
		invoices: make(map[string]storedInvoice),
	}
}

// CreateShop stores a shop
func (r *MemoryRepository) CreateShop(ctx context.Context, shop *domain.Shop) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.shops[shop.ID] = storedShop{shop: copyShop(*shop), seq: r.seq}
	return nil
}

// GetShopByID retrieves a shop by its ID
func (r *MemoryRepository) GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.shops[shopID]
	if !ok {
		return nil, fmt.Errorf("shop %s: %w", shopID, domain.ErrNotFound)
	}

	shop := copyShop(stored.shop)
	return &shop, nil
}

// ListShops returns up to limit shops in insertion order
func (r *MemoryRepository) ListShops(ctx context.Context, limit int) ([]domain.Shop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]storedShop, 0, len(r.shops))
	for _, s := range r.shops {
		stored = append(stored, s)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].seq < stored[j].seq })

	shops := make([]domain.Shop, 0, len(stored))
	for _, s := range stored {
		if limit > 0 && len(shops) == limit {
			break
		}
		shops = append(shops, copyShop(s.shop))
	}
	return shops, nil
}

// CreateInvoice stores an invoice, rejecting a reused invoice number
func (r *MemoryRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.invoices {
		if stored.invoice.InvoiceNumber == invoice.InvoiceNumber {
			return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, domain.ErrDuplicateInvoiceNumber)
		}
	}

	r.seq++
	r.invoices[invoice.ID] = storedInvoice{invoice: copyInvoice(*invoice), seq: r.seq}
	return nil
}

// GetInvoiceByID retrieves an invoice by its ID
func (r *MemoryRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.invoices[invoiceID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, domain.ErrNotFound)
	}

	invoice := copyInvoice(stored.invoice)
	return &invoice, nil
}

// ListInvoices returns a page of invoices, newest first
func (r *MemoryRepository) ListInvoices(ctx context.Context, offset, limit int) ([]domain.Invoice, error) {
	return r.filterInvoices(ctx, offset, limit, func(domain.Invoice) bool { return true })
}

// SearchInvoices matches query against customer name, mobile and invoice number
func (r *MemoryRepository) SearchInvoices(ctx context.Context, query string, limit int) ([]domain.Invoice, error) {
	needle := strings.ToLower(query)
	return r.filterInvoices(ctx, 0, limit, func(inv domain.Invoice) bool {
		return strings.Contains(strings.ToLower(inv.CustomerDetails.Name), needle) ||
			strings.Contains(strings.ToLower(inv.CustomerDetails.Mobile), needle) ||
			strings.Contains(strings.ToLower(inv.InvoiceNumber), needle)
	})
}

// DeleteInvoice removes an invoice by its ID
func (r *MemoryRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invoices[invoiceID]; !ok {
		return fmt.Errorf("invoice %s: %w", invoiceID, domain.ErrNotFound)
	}
	delete(r.invoices, invoiceID)
	return nil
}

// LastInvoiceNumber returns the stored invoice number with the highest sequence
func (r *MemoryRepository) LastInvoiceNumber(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		last    string
		lastSeq int64
		found   bool
	)
	for _, stored := range r.invoices {
		n, err := domain.ParseInvoiceNumber(stored.invoice.InvoiceNumber)
		if err != nil {
			return "", false, err
		}
		if !found || n > lastSeq {
			last, lastSeq, found = stored.invoice.InvoiceNumber, n, true
		}
	}
	return last, found, nil
}

func (r *MemoryRepository) filterInvoices(ctx context.Context, offset, limit int, match func(domain.Invoice) bool) ([]domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]storedInvoice, 0, len(r.invoices))
	for _, stored := range r.invoices {
		if match(stored.invoice) {
			matched = append(matched, stored)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.invoice.CreatedAt.Equal(b.invoice.CreatedAt) {
			return a.invoice.CreatedAt.After(b.invoice.CreatedAt)
		}
		return a.seq > b.seq
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.Invoice{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	invoices := make([]domain.Invoice, len(matched))
	for i, stored := range matched {
		invoices[i] = copyInvoice(stored.invoice)
	}
	return invoices, nil
}

func copyShop(shop domain.Shop) domain.Shop {
	if shop.Phone != nil {
		phone := *shop.Phone
		shop.Phone = &phone
	}
	return shop
}

func copyInvoice(invoice domain.Invoice) domain.Invoice {
	invoice.ShopDetails = copyShop(invoice.ShopDetails)
	invoice.Products = append([]domain.LineItem(nil), invoice.Products...)
	if invoice.Products == nil {
		invoice.Products = []domain.LineItem{}
	}
	if invoice.QRCodeBase64 != nil {
		qr := *invoice.QRCodeBase64
		invoice.QRCodeBase64 = &qr
	}
	return invoice
}
