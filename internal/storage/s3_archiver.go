package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const pdfContentType = "application/pdf"

// S3Archiver uploads rendered invoice PDFs to S3-compatible storage
type S3Archiver struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
}

// Config holds configuration for the S3 archiver
type Config struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	Region          string
}

// NewS3Archiver creates a new S3 archiver
func NewS3Archiver(config *Config) (*S3Archiver, error) {
	if config.Endpoint == "" || config.AccessKeyID == "" || config.AccessKeySecret == "" {
		return nil, fmt.Errorf("S3 configuration is incomplete")
	}

	if config.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is not configured")
	}

	endpoint := strings.TrimRight(config.Endpoint, "/")

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(config.Region),
		Endpoint:         aws.String(endpoint),
		Credentials:      credentials.NewStaticCredentials(config.AccessKeyID, config.AccessKeySecret, ""),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(strings.HasPrefix(endpoint, "http://")),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Archiver{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		endpoint: endpoint,
	}, nil
}

// InvoiceObjectKey is the object key an invoice PDF is stored under
func InvoiceObjectKey(invoiceNumber, invoiceID string) string {
	return fmt.Sprintf("invoices/%s-%s.pdf", invoiceNumber, invoiceID)
}

// UploadPDF uploads a PDF under key and returns its path-style URL
func (u *S3Archiver) UploadPDF(ctx context.Context, key string, pdfData []byte) (string, error) {
	_, err := u.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(pdfData),
		ContentType:   aws.String(pdfContentType),
		ContentLength: aws.Int64(int64(len(pdfData))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return u.objectURL(key), nil
}

func (u *S3Archiver) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", u.endpoint, url.PathEscape(u.bucket), (&url.URL{Path: key}).EscapedPath())
}
