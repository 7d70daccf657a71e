package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

// PostgresShopRepository implements ShopRepository using PostgreSQL
type PostgresShopRepository struct {
	db *pgxpool.Pool
}

// NewPostgresShopRepository creates a new PostgreSQL shop repository
func NewPostgresShopRepository(db *pgxpool.Pool) *PostgresShopRepository {
	return &PostgresShopRepository{db: db}
}

// CreateShop saves a new shop to the database
func (r *PostgresShopRepository) CreateShop(ctx context.Context, shop *domain.Shop) error {
	query := `
		INSERT INTO shops (id, name, address, gst_number, state, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		shop.ID,
		shop.Name,
		shop.Address,
		shop.GSTNumber,
		shop.State,
		shop.Phone,
		shop.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	return nil
}

// GetShopByID retrieves a shop by its ID
func (r *PostgresShopRepository) GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.db.QueryRow(ctx, `
		SELECT id, name, address, gst_number, state, phone, created_at
		FROM shops
		WHERE id = $1
	`, shopID).Scan(
		&shop.ID, &shop.Name, &shop.Address, &shop.GSTNumber, &shop.State, &shop.Phone, &shop.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shop %s: %w", shopID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &shop, nil
}

// ListShops retrieves up to limit shops in creation order
func (r *PostgresShopRepository) ListShops(ctx context.Context, limit int) ([]domain.Shop, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, gst_number, state, phone, created_at
		FROM shops
		ORDER BY created_at
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	shops := []domain.Shop{}
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Address, &shop.GSTNumber, &shop.State, &shop.Phone, &shop.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	return shops, nil
}
