package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

const uniqueViolation = "23505"

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
// The full invoice is kept as a JSONB document next to the columns used for
// lookup, search and ordering.
type PostgresInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(db *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db: db,
	}
}

// CreateInvoice saves a new invoice to the database
func (r *PostgresInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	document, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("failed to encode invoice: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO invoices (id, invoice_number, customer_name, customer_mobile, final_amount, created_at, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, invoice.ID, invoice.InvoiceNumber, invoice.CustomerDetails.Name, invoice.CustomerDetails.Mobile,
		invoice.FinalAmount, invoice.CreatedAt, document)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, domain.ErrDuplicateInvoiceNumber)
		}
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	return nil
}

// GetInvoiceByID retrieves an invoice by its ID
func (r *PostgresInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var document []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM invoices WHERE id = $1`, invoiceID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	var invoice domain.Invoice
	if err := json.Unmarshal(document, &invoice); err != nil {
		return nil, fmt.Errorf("failed to decode invoice %s: %w", invoiceID, err)
	}

	return &invoice, nil
}

// ListInvoices retrieves a page of invoices ordered by creation time, newest first
func (r *PostgresInvoiceRepository) ListInvoices(ctx context.Context, offset, limit int) ([]domain.Invoice, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	return r.queryInvoices(ctx, `
		SELECT document
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

// SearchInvoices performs a case-insensitive partial match on customer name,
// customer mobile and invoice number
func (r *PostgresInvoiceRepository) SearchInvoices(ctx context.Context, query string, limit int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	pattern := "%" + escapeLike(query) + "%"
	return r.queryInvoices(ctx, `
		SELECT document
		FROM invoices
		WHERE customer_name ILIKE $1
		   OR customer_mobile ILIKE $1
		   OR invoice_number ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2
	`, pattern, limit)
}

// DeleteInvoice deletes an invoice by its ID
func (r *PostgresInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, domain.ErrNotFound)
	}

	return nil
}

// LastInvoiceNumber returns the highest invoice number. Numbers share the INV
// prefix, so ordering by length first gives numeric order (INV10 after INV9).
func (r *PostgresInvoiceRepository) LastInvoiceNumber(ctx context.Context) (string, bool, error) {
	var number string
	err := r.db.QueryRow(ctx, `
		SELECT invoice_number
		FROM invoices
		ORDER BY length(invoice_number) DESC, invoice_number DESC
		LIMIT 1
	`).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get last invoice number: %w", err)
	}

	return number, true, nil
}

func (r *PostgresInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...interface{}) ([]domain.Invoice, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}

		var invoice domain.Invoice
		if err := json.Unmarshal(document, &invoice); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return invoices, nil
}

// escapeLike escapes the ILIKE wildcards so the query is matched literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
