package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Archiver_Validation(t *testing.T) {
	_, err := NewS3Archiver(&Config{Bucket: "invoices"})
	assert.Error(t, err)

	_, err = NewS3Archiver(&Config{Endpoint: "https://s3.example.com", AccessKeyID: "id", AccessKeySecret: "secret"})
	assert.Error(t, err)

	a, err := NewS3Archiver(&Config{
		Endpoint:        "https://s3.example.com/",
		AccessKeyID:     "id",
		AccessKeySecret: "secret",
		Bucket:          "invoices",
		Region:          "ap-south-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/invoices/invoices/INV7-abc.pdf", a.objectURL(InvoiceObjectKey("INV7", "abc")))
}

func TestS3Archiver_UploadPDF(t *testing.T) {
	var (
		gotMethod, gotPath, gotContentType string
		gotBody                            []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a, err := NewS3Archiver(&Config{
		Endpoint:        srv.URL,
		AccessKeyID:     "id",
		AccessKeySecret: "secret",
		Bucket:          "invoices",
		Region:          "us-east-1",
	})
	require.NoError(t, err)

	url, err := a.UploadPDF(context.Background(), "invoices/INV1-x.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/invoices/invoices/INV1-x.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Equal(t, []byte("%PDF-1.3"), gotBody)
	assert.Equal(t, srv.URL+"/invoices/invoices/INV1-x.pdf", url)
}

func TestS3Archiver_UploadPDFError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a, err := NewS3Archiver(&Config{
		Endpoint:        srv.URL,
		AccessKeyID:     "id",
		AccessKeySecret: "secret",
		Bucket:          "invoices",
		Region:          "us-east-1",
	})
	require.NoError(t, err)

	_, err = a.UploadPDF(context.Background(), "k.pdf", []byte("x"))
	assert.Error(t, err)
}
