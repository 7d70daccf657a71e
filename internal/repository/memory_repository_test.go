package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

func newInvoice(id, number, customer, mobile string, createdAt time.Time) *domain.Invoice {
	return &domain.Invoice{
		ID:              id,
		InvoiceNumber:   number,
		CustomerDetails: domain.Customer{Name: customer, Mobile: mobile},
		Products:        []domain.LineItem{{Name: "Widget", Quantity: 1, UnitRate: 10, GSTRate: 18}},
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestMemoryRepository_Invoices(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, found, err := repo.LastInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	for i, inv := range []*domain.Invoice{
		newInvoice("a", "INV9", "Priya Sharma", "9876543210", base),
		newInvoice("b", "INV10", "Rahul Verma", "9123456780", base.Add(time.Minute)),
		newInvoice("c", "INV11", "priya menon", "9000000000", base.Add(2*time.Minute)),
	} {
		require.NoError(t, repo.CreateInvoice(ctx, inv), "invoice %d", i)
	}

	t.Run("last number is numeric, not lexical", func(t *testing.T) {
		last, found, err := repo.LastInvoiceNumber(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "INV11", last)
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		err := repo.CreateInvoice(ctx, newInvoice("d", "INV10", "X", "1", base))
		assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
	})

	t.Run("list is newest first with paging", func(t *testing.T) {
		all, err := repo.ListInvoices(ctx, 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

		page, err := repo.ListInvoices(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "b", page[0].ID)

		empty, err := repo.ListInvoices(ctx, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		byName, err := repo.SearchInvoices(ctx, "PRIYA", 100)
		require.NoError(t, err)
		require.Len(t, byName, 2)
		assert.Equal(t, "c", byName[0].ID)

		byMobile, err := repo.SearchInvoices(ctx, "91234", 100)
		require.NoError(t, err)
		require.Len(t, byMobile, 1)
		assert.Equal(t, "b", byMobile[0].ID)

		byNumber, err := repo.SearchInvoices(ctx, "inv1", 100)
		require.NoError(t, err)
		assert.Len(t, byNumber, 2)

		none, err := repo.SearchInvoices(ctx, "nobody", 100)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("returned invoices are copies", func(t *testing.T) {
		got, err := repo.GetInvoiceByID(ctx, "a")
		require.NoError(t, err)
		got.Products[0].Name = "changed"

		again, err := repo.GetInvoiceByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Widget", again.Products[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteInvoice(ctx, "a"))
		assert.ErrorIs(t, repo.DeleteInvoice(ctx, "a"), domain.ErrNotFound)

		_, err := repo.GetInvoiceByID(ctx, "a")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemoryRepository_Shops(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	phone := "9876543210"

	require.NoError(t, repo.CreateShop(ctx, &domain.Shop{ID: "s1", Name: "Rajesh Electronics", Phone: &phone}))
	require.NoError(t, repo.CreateShop(ctx, &domain.Shop{ID: "s2", Name: "Kumar Traders"}))

	shop, err := repo.GetShopByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Electronics", shop.Name)
	require.NotNil(t, shop.Phone)
	assert.Equal(t, phone, *shop.Phone)

	_, err = repo.GetShopByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	shops, err := repo.ListShops(ctx, 100)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "s1", shops[0].ID)

	limited, err := repo.ListShops(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepository()
	_, err := repo.ListInvoices(ctx, 0, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
