package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/metrics"
	"github.com/ridwanfathin/gst-billing-service/internal/middleware"
	"github.com/ridwanfathin/gst-billing-service/internal/model"
	"github.com/ridwanfathin/gst-billing-service/internal/pdf"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
	"github.com/ridwanfathin/gst-billing-service/internal/service"
)

const sampleInvoiceBody = `{
	"shop_details": {"name": "Rajesh Electronics", "address": "12 MG Road, Bengaluru", "gst_number": "29ABCDE1234F1Z5", "state": "Karnataka"},
	"customer_details": {"name": "Priya Sharma", "mobile": "9876543210"},
	"products": [{"name": "LED Bulb", "quantity": 2, "unit_rate": 1000.0, "discount_percentage": 5}]
}`

type stubArchiver struct{}

func (stubArchiver) UploadPDF(ctx context.Context, key string, pdfData []byte) (string, error) {
	return "https://s3.example.com/invoices/" + key, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, archiver service.InvoiceArchiver, ping func(context.Context) error) *gin.Engine {
	t.Helper()

	repo := repository.NewMemoryRepository()
	invoiceService := service.NewInvoiceService(repo, pdf.NewInvoiceRenderer(), archiver, metrics.New(prometheus.NewRegistry()), nil, 2)
	shopService := service.NewShopService(repo, nil)

	router := gin.New()
	router.Use(middleware.RequestID())

	root := NewRootHandler("memory", ping)
	router.GET("/health", root.Health)

	api := router.Group("/api")
	api.GET("/", root.Root)
	NewShopHandler(shopService).Register(api)
	NewInvoiceHandler(invoiceService).Register(api)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func createInvoice(t *testing.T, router *gin.Engine, body string) domain.Invoice {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/invoices", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[domain.Invoice](t, w)
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doRequest(router, http.MethodGet, "/api/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"GST Billing API"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, w.Body.String())

	down := newTestRouter(t, nil, func(context.Context) error { return errors.New("connection refused") })
	w = doRequest(down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestShopRoutes(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doRequest(router, http.MethodPost, "/api/shop", `{"name":"Rajesh Electronics","address":"12 MG Road","gst_number":"29ABCDE1234F1Z5","state":"Karnataka","phone":"9876543210"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	shop := decode[domain.Shop](t, w)
	assert.NotEmpty(t, shop.ID)
	require.NotNil(t, shop.Phone)

	w = doRequest(router, http.MethodGet, "/api/shop/"+shop.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/shop", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Shop](t, w), 1)

	w = doRequest(router, http.MethodGet, "/api/shop/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Shop not found", decode[model.ErrorResponse](t, w).Message)

	w = doRequest(router, http.MethodPost, "/api/shop", `{"name":"No Address"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[model.ErrorResponse](t, w)
	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"address", "gst_number", "state"}, fields)
}

func TestCreateInvoice(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doRequest(router, http.MethodPost, "/api/invoices", sampleInvoiceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Contains(t, body, `"invoice_number":"INV1"`)
	assert.Contains(t, body, `"total_taxable_value":1900.0`)
	assert.Contains(t, body, `"total_cgst":171.0`)
	assert.Contains(t, body, `"total_sgst":171.0`)
	assert.Contains(t, body, `"total_tax":342.0`)
	assert.Contains(t, body, `"round_off":0.0`)
	assert.Contains(t, body, `"final_amount":2242,`)
	assert.Contains(t, body, `"amount_in_words":"Two Thousand Two Hundred Forty Two Rupees Only"`)

	inv := decode[domain.Invoice](t, w)
	require.Len(t, inv.Products, 1)
	assert.Equal(t, domain.DefaultGSTRate, inv.Products[0].GSTRate)

	second := createInvoice(t, router, sampleInvoiceBody)
	assert.Equal(t, "INV2", second.InvoiceNumber)
}

func TestCreateInvoice_Validation(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing quantity",
			body:      `{"shop_details":{"name":"S","address":"A","gst_number":"G","state":"K"},"customer_details":{"name":"C","mobile":"1"},"products":[{"name":"P","unit_rate":10}]}`,
			wantField: "products[0].quantity",
		},
		{
			name:      "missing customer mobile",
			body:      `{"shop_details":{"name":"S","address":"A","gst_number":"G","state":"K"},"customer_details":{"name":"C"},"products":[]}`,
			wantField: "customer_details.mobile",
		},
		{
			name:      "missing products",
			body:      `{"shop_details":{"name":"S","address":"A","gst_number":"G","state":"K"},"customer_details":{"name":"C","mobile":"1"}}`,
			wantField: "products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/invoices", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[model.ErrorResponse](t, w)
			require.NotEmpty(t, resp.Details)
			assert.Equal(t, tt.wantField, resp.Details[0].Field)
		})
	}

	w := doRequest(router, http.MethodPost, "/api/invoices", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvoice_EmptyProducts(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	inv := createInvoice(t, router, `{"shop_details":{"name":"S","address":"A","gst_number":"G","state":"K"},"customer_details":{"name":"C","mobile":"1"},"products":[]}`)
	assert.Equal(t, int64(0), inv.FinalAmount)
	assert.Equal(t, "Zero Rupees Only", inv.AmountInWords)
}

func TestInvoiceRoutes(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	first := createInvoice(t, router, sampleInvoiceBody)
	second := createInvoice(t, router, strings.Replace(sampleInvoiceBody, "Priya Sharma", "Rahul Verma", 1))

	w := doRequest(router, http.MethodGet, "/api/invoices", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Invoice](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	w = doRequest(router, http.MethodGet, "/api/invoices?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[[]domain.Invoice](t, w)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	w = doRequest(router, http.MethodGet, "/api/invoices?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/invoices/search/rahul", "")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]domain.Invoice](t, w)
	require.Len(t, found, 1)
	assert.Equal(t, second.ID, found[0].ID)

	w = doRequest(router, http.MethodGet, "/api/invoices/"+first.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.InvoiceNumber, decode[domain.Invoice](t, w).InvoiceNumber)

	w = doRequest(router, http.MethodDelete, "/api/invoices/"+first.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Invoice deleted successfully"}`, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/api/invoices/"+first.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/invoices/"+first.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invoice not found", decode[model.ErrorResponse](t, w).Message)
}

func TestDownloadInvoicePDF(t *testing.T) {
	router := newTestRouter(t, nil, nil)
	inv := createInvoice(t, router, sampleInvoiceBody)

	w := doRequest(router, http.MethodGet, "/api/invoices/"+inv.ID+"/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="INV1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = doRequest(router, http.MethodGet, "/api/invoices/missing/pdf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArchiveInvoice(t *testing.T) {
	disabled := newTestRouter(t, nil, nil)
	inv := createInvoice(t, disabled, sampleInvoiceBody)

	w := doRequest(disabled, http.MethodPost, "/api/invoices/"+inv.ID+"/archive", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	enabled := newTestRouter(t, stubArchiver{}, nil)
	inv = createInvoice(t, enabled, sampleInvoiceBody)

	w = doRequest(enabled, http.MethodPost, "/api/invoices/"+inv.ID+"/archive", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "https://s3.example.com/invoices/invoices/INV1-"+inv.ID+".pdf", decode[model.ArchiveResponse](t, w).URL)

	w = doRequest(enabled, http.MethodPost, "/api/invoices/missing/archive", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
