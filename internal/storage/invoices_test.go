package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuel-console/internal/config"
)

type MockPutter struct {
	mock.Mock
}

func (m *MockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestInvoiceArchive_Put(t *testing.T) {
	var uploaded []byte
	putter := new(MockPutter)
	putter.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "bills" &&
			aws.ToString(in.Key) == "invoices/INV-1.pdf" &&
			aws.ToString(in.ContentType) == "application/pdf"
	})).Run(func(args mock.Arguments) {
		uploaded, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
	}).Return(&s3.PutObjectOutput{}, nil)

	archive := NewInvoiceArchive(putter, "bills", "invoices/")
	key, err := archive.Put(context.Background(), "INV-1.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "invoices/INV-1.pdf", key)
	assert.Equal(t, "%PDF", string(uploaded))
	putter.AssertExpectations(t)
}

func TestInvoiceArchive_PutError(t *testing.T) {
	putter := new(MockPutter)
	putter.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewInvoiceArchive(putter, "bills", "").Put(context.Background(), "x.pdf", nil)
	assert.ErrorContains(t, err, "access denied")
}

func TestNewInvoiceArchiveFromConfig_Disabled(t *testing.T) {
	archive, err := NewInvoiceArchiveFromConfig(context.Background(), config.StorageConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, archive)
}
