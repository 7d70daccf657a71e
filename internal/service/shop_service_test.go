package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
)

func TestShopService(t *testing.T) {
	ctx := context.Background()
	svc := NewShopService(repository.NewMemoryRepository(), nil)
	phone := "080-2222333"

	shop, err := svc.CreateShop(ctx, domain.ShopInput{
		Name:      "Rajesh Electronics",
		Address:   "12 MG Road, Bengaluru",
		GSTNumber: "29ABCDE1234F1Z5",
		State:     "Karnataka",
		Phone:     &phone,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, shop.ID)
	assert.False(t, shop.CreatedAt.IsZero())

	got, err := svc.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.GSTNumber, got.GSTNumber)
	require.NotNil(t, got.Phone)
	assert.Equal(t, phone, *got.Phone)

	shops, err := svc.ListShops(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 1)

	_, err = svc.GetShop(ctx, "missing")
	var svcErr *ShopServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "get_shop", svcErr.Op)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
