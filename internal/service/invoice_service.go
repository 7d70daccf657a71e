package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/gst"
	"github.com/ridwanfathin/gst-billing-service/internal/metrics"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
	"github.com/ridwanfathin/gst-billing-service/internal/storage"
)

// ErrArchiveDisabled is returned by ArchiveInvoice when no object storage is configured
var ErrArchiveDisabled = errors.New("invoice archiving is not configured")

// InvoiceServiceError represents an error in the invoice service
type InvoiceServiceError struct {
	Op  string
	Err error
}

func (e *InvoiceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *InvoiceServiceError) Unwrap() error {
	return e.Err
}

// InvoiceRenderer produces the printable form of an invoice
type InvoiceRenderer interface {
	Render(ctx context.Context, invoice *domain.Invoice) ([]byte, error)
}

// InvoiceArchiver stores a rendered invoice and returns where it can be fetched
type InvoiceArchiver interface {
	UploadPDF(ctx context.Context, key string, pdfData []byte) (string, error)
}

// InvoiceService defines the interface for invoice-related business logic
type InvoiceService interface {
	// CRUD operations
	CreateInvoice(ctx context.Context, input domain.InvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// Query operations
	ListInvoices(ctx context.Context, skip, limit int) ([]domain.Invoice, error)
	SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error)

	// Document operations
	RenderInvoicePDF(ctx context.Context, invoiceID string) (*domain.Invoice, []byte, error)
	ArchiveInvoice(ctx context.Context, invoiceID string) (string, error)
}

// InvoiceServiceImpl implements the InvoiceService interface
type InvoiceServiceImpl struct {
	repository repository.InvoiceRepository
	renderer   InvoiceRenderer
	archiver   InvoiceArchiver
	metrics    *metrics.Metrics
	logger     *zap.Logger
	workerPool chan struct{}
	now        func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
// archiver may be nil, in which case ArchiveInvoice returns ErrArchiveDisabled.
// maxWorkers bounds the number of PDFs rendered concurrently.
func NewInvoiceService(repo repository.InvoiceRepository, renderer InvoiceRenderer, archiver InvoiceArchiver, m *metrics.Metrics, logger *zap.Logger, maxWorkers int) InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &InvoiceServiceImpl{
		repository: repo,
		renderer:   renderer,
		archiver:   archiver,
		metrics:    m,
		logger:     logger,
		workerPool: make(chan struct{}, maxWorkers),
		now:        time.Now,
	}
}

// CreateInvoice allocates the next invoice number, computes the totals and the
// amount in words, and persists the result
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, input domain.InvoiceInput) (*domain.Invoice, error) {
	last, found, err := s.repository.LastInvoiceNumber(ctx)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "last_invoice_number", Err: err}
	}

	number, err := domain.NextInvoiceNumber(last, found)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "next_invoice_number", Err: err}
	}

	products := input.Products
	if products == nil {
		products = []domain.LineItem{}
	}

	totals := gst.CalculateTotals(products)
	words := gst.AmountInWords(totals.FinalAmount)
	if words == gst.AmountConversionFallback {
		// the invoice is still valid, only its words line degrades
		s.logger.Warn("amount in words unavailable",
			zap.String("invoice_number", number),
			zap.Int64("final_amount", totals.FinalAmount),
		)
		s.metrics.RecordWordsFailure()
	}

	now := s.now().UTC()

	shop := input.ShopDetails
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = now
	}

	invoice := &domain.Invoice{
		ID:              uuid.NewString(),
		InvoiceNumber:   number,
		ShopDetails:     shop,
		CustomerDetails: input.CustomerDetails,
		Products:        products,
		ReverseCharge:   input.ReverseCharge,
		QRCodeBase64:    input.QRCodeBase64,
		InvoiceTotals:   totals,
		AmountInWords:   words,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repository.CreateInvoice(ctx, invoice); err != nil {
		return nil, &InvoiceServiceError{Op: "create_invoice", Err: err}
	}

	s.metrics.RecordInvoiceCreated(invoice.FinalAmount)
	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int("products", len(invoice.Products)),
		zap.Int64("final_amount", invoice.FinalAmount),
	)

	return invoice, nil
}

// GetInvoice retrieves an invoice by its ID
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.repository.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "get_invoice", Err: err}
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.repository.DeleteInvoice(ctx, invoiceID); err != nil {
		return &InvoiceServiceError{Op: "delete_invoice", Err: err}
	}

	s.metrics.RecordInvoiceDeleted()
	s.logger.Info("invoice deleted", zap.String("invoice_id", invoiceID))
	return nil
}

// ListInvoices returns a page of invoices, newest first.
// A negative skip is treated as zero; a non-positive limit means DefaultListLimit.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, skip, limit int) ([]domain.Invoice, error) {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit <= 0:
		limit = repository.DefaultListLimit
	case limit > repository.MaxListLimit:
		limit = repository.MaxListLimit
	}

	invoices, err := s.repository.ListInvoices(ctx, skip, limit)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "list_invoices", Err: err}
	}
	return invoices, nil
}

// SearchInvoices finds invoices whose customer name, mobile or number contain query
func (s *InvoiceServiceImpl) SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Invoice{}, nil
	}

	invoices, err := s.repository.SearchInvoices(ctx, query, repository.DefaultListLimit)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "search_invoices", Err: err}
	}
	return invoices, nil
}

// RenderInvoicePDF renders a stored invoice as PDF
func (s *InvoiceServiceImpl) RenderInvoicePDF(ctx context.Context, invoiceID string) (*domain.Invoice, []byte, error) {
	invoice, err := s.repository.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, &InvoiceServiceError{Op: "get_invoice", Err: err}
	}

	pdfData, err := s.render(ctx, invoice)
	if err != nil {
		return nil, nil, err
	}
	return invoice, pdfData, nil
}

// ArchiveInvoice renders a stored invoice and uploads the PDF to object storage
func (s *InvoiceServiceImpl) ArchiveInvoice(ctx context.Context, invoiceID string) (string, error) {
	if s.archiver == nil {
		return "", &InvoiceServiceError{Op: "archive_invoice", Err: ErrArchiveDisabled}
	}

	invoice, pdfData, err := s.RenderInvoicePDF(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	url, err := s.archiver.UploadPDF(ctx, storage.InvoiceObjectKey(invoice.InvoiceNumber, invoice.ID), pdfData)
	s.metrics.RecordArchive(err)
	if err != nil {
		return "", &InvoiceServiceError{Op: "upload_invoice_pdf", Err: err}
	}

	s.logger.Info("invoice archived", zap.String("invoice_id", invoice.ID), zap.String("url", url))
	return url, nil
}

func (s *InvoiceServiceImpl) render(ctx context.Context, invoice *domain.Invoice) ([]byte, error) {
	// Acquire worker from pool
	select {
	case s.workerPool <- struct{}{}:
		defer func() {
			<-s.workerPool
		}()
	case <-ctx.Done():
		return nil, &InvoiceServiceError{Op: "acquire_worker", Err: ctx.Err()}
	}

	pdfData, err := s.renderer.Render(ctx, invoice)
	if err != nil {
		return nil, &InvoiceServiceError{Op: "render_invoice_pdf", Err: err}
	}
	return pdfData, nil
}
