package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	stdimage "image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/gst"
)

func sampleInvoice() *domain.Invoice {
	phone := "9876543210"
	products := []domain.LineItem{
		{Name: "LED Bulb 9W", Quantity: 2, UnitRate: 1000, DiscountPercentage: 5, GSTRate: 18},
		{Name: "Extension Board", Quantity: 1, UnitRate: 450, GSTRate: 12},
	}
	totals := gst.CalculateTotals(products)

	return &domain.Invoice{
		ID:            "5b0f7c1e-0000-4000-8000-000000000001",
		InvoiceNumber: "INV1",
		ShopDetails: domain.Shop{
			Name:      "Rajesh Electronics",
			Address:   "12 MG Road, Bengaluru",
			GSTNumber: "29ABCDE1234F1Z5",
			State:     "Karnataka",
			Phone:     &phone,
		},
		CustomerDetails: domain.Customer{Name: "Priya Sharma", Mobile: "9123456780", State: "Karnataka"},
		Products:        products,
		InvoiceTotals:   totals,
		AmountInWords:   gst.AmountInWords(totals.FinalAmount),
		CreatedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceRenderer_Render(t *testing.T) {
	out, err := NewInvoiceRenderer().Render(context.Background(), sampleInvoice())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is not a PDF")
}

func TestInvoiceRenderer_RenderWithoutProducts(t *testing.T) {
	inv := sampleInvoice()
	inv.Products = nil
	inv.InvoiceTotals = gst.CalculateTotals(nil)

	out, err := NewInvoiceRenderer().Render(context.Background(), inv)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestInvoiceRenderer_Errors(t *testing.T) {
	r := NewInvoiceRenderer()

	_, err := r.Render(context.Background(), nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, sampleInvoice())
	assert.ErrorIs(t, err, context.Canceled)
}

func qrPNG(t *testing.T, size int) []byte {
	t.Helper()
	img := stdimage.NewGray(stdimage.Rect(0, 0, size, size))
	for i := 0; i < size; i += 2 {
		img.SetGray(i, i, color.Gray{Y: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInvoiceRenderer_RenderWithQRCode(t *testing.T) {
	inv := sampleInvoice()
	qr := base64.StdEncoding.EncodeToString(qrPNG(t, 64))
	inv.QRCodeBase64 = &qr

	out, err := NewInvoiceRenderer().Render(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDecodeQRCode(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(qrPNG(t, 32))
	dataURL := "data:image/png;base64," + encoded
	large := base64.StdEncoding.EncodeToString(qrPNG(t, 1024))
	garbage := "not base64!"
	text := base64.StdEncoding.EncodeToString([]byte("hello"))
	empty := ""

	tests := []struct {
		name     string
		input    *string
		wantOK   bool
		wantSize int
	}{
		{name: "nil", input: nil},
		{name: "empty", input: &empty},
		{name: "raw base64 png", input: &encoded, wantOK: true, wantSize: 32},
		{name: "data url", input: &dataURL, wantOK: true, wantSize: 32},
		{name: "oversized image is shrunk", input: &large, wantOK: true, wantSize: 512},
		{name: "invalid base64", input: &garbage},
		{name: "not an image", input: &text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok := decodeQRCode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			cfg, format, err := stdimage.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, tt.wantSize, cfg.Width)
		})
	}
}
