package repository

import (
	"context"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	CreateShop(ctx context.Context, shop *domain.Shop) error
	GetShopByID(ctx context.Context, shopID string) (*domain.Shop, error)
	ListShops(ctx context.Context, limit int) ([]domain.Shop, error)
}
