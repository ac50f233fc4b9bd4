// Package storage archives generated documents to S3-compatible storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"fuel-console/internal/config"
)

// ObjectPutter is the part of the S3 client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// InvoiceArchive uploads invoice PDFs under a key prefix in one bucket.
type InvoiceArchive struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewInvoiceArchive wraps an existing client.
func NewInvoiceArchive(client ObjectPutter, bucket, prefix string) *InvoiceArchive {
	return &InvoiceArchive{client: client, bucket: bucket, prefix: prefix}
}

// NewInvoiceArchiveFromConfig builds an S3 client for the configured bucket.
// It returns nil, nil when archiving is disabled.
func NewInvoiceArchiveFromConfig(ctx context.Context, cfg config.StorageConfig) (*InvoiceArchive, error) {
	if !cfg.Enabled || cfg.Bucket == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure invoice storage: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Printf("[Storage] Archiving invoices to bucket %s", cfg.Bucket)
	return NewInvoiceArchive(client, cfg.Bucket, cfg.Prefix), nil
}

// Put uploads a PDF named name and returns its object key.
func (a *InvoiceArchive) Put(ctx context.Context, name string, pdf []byte) (string, error) {
	key := path.Join(a.prefix, name)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}
