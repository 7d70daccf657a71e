package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
)

// ShopServiceError represents an error in the shop service
type ShopServiceError struct {
	Op  string
	Err error
}

func (e *ShopServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ShopServiceError) Unwrap() error {
	return e.Err
}

// ShopService defines the interface for shop-related business logic
type ShopService interface {
	CreateShop(ctx context.Context, input domain.ShopInput) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
}

// ShopServiceImpl implements the ShopService interface
type ShopServiceImpl struct {
	repository repository.ShopRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewShopService creates a new ShopService
func NewShopService(repo repository.ShopRepository, logger *zap.Logger) ShopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShopServiceImpl{
		repository: repo,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateShop registers a seller
func (s *ShopServiceImpl) CreateShop(ctx context.Context, input domain.ShopInput) (*domain.Shop, error) {
	shop := &domain.Shop{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Address:   input.Address,
		GSTNumber: input.GSTNumber,
		State:     input.State,
		Phone:     input.Phone,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repository.CreateShop(ctx, shop); err != nil {
		return nil, &ShopServiceError{Op: "create_shop", Err: err}
	}

	s.logger.Info("shop created", zap.String("shop_id", shop.ID), zap.String("gst_number", shop.GSTNumber))
	return shop, nil
}

// ListShops returns up to repository.DefaultListLimit shops
func (s *ShopServiceImpl) ListShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repository.ListShops(ctx, repository.DefaultListLimit)
	if err != nil {
		return nil, &ShopServiceError{Op: "list_shops", Err: err}
	}
	return shops, nil
}

// GetShop retrieves a shop by its ID
func (s *ShopServiceImpl) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	shop, err := s.repository.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, &ShopServiceError{Op: "get_shop", Err: err}
	}
	return shop, nil
}
