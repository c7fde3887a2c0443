package jobs

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crackershop/internal/models"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListImagePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, filename string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, filename, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockImageStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestSweep_ReportsUnreferencedFiles(t *testing.T) {
	ctx := context.Background()

	store := new(MockImageStore)
	products := new(MockProductRepository)

	store.On("List", ctx).Return([]string{
		"1700000000000-pic.png",
		"1700000000001-orphan.png",
		"1700000000002-old.png",
	}, nil)
	products.On("ListImagePaths", ctx).Return([]string{
		"/uploads/1700000000000-pic.png",
	}, nil)

	sweeper := NewUploadsSweeper(products, store)

	orphans, err := sweeper.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1700000000001-orphan.png", "1700000000002-old.png"}, orphans)
}

func TestSweep_NothingOrphaned(t *testing.T) {
	ctx := context.Background()

	store := new(MockImageStore)
	products := new(MockProductRepository)

	store.On("List", ctx).Return([]string{"1700000000000-pic.png"}, nil)
	products.On("ListImagePaths", ctx).Return([]string{"/uploads/1700000000000-pic.png"}, nil)

	sweeper := NewUploadsSweeper(products, store)

	orphans, err := sweeper.Sweep(ctx)
	assert.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestSweep_StoreError(t *testing.T) {
	ctx := context.Background()

	store := new(MockImageStore)
	products := new(MockProductRepository)

	store.On("List", ctx).Return(nil, errors.New("store unavailable"))

	sweeper := NewUploadsSweeper(products, store)

	orphans, err := sweeper.Sweep(ctx)
	assert.Error(t, err)
	assert.Nil(t, orphans)
	products.AssertNotCalled(t, "ListImagePaths", ctx)
}

func TestSweep_RepositoryError(t *testing.T) {
	ctx := context.Background()

	store := new(MockImageStore)
	products := new(MockProductRepository)

	store.On("List", ctx).Return([]string{"1700000000000-pic.png"}, nil)
	products.On("ListImagePaths", ctx).Return(nil, errors.New("query failed"))

	sweeper := NewUploadsSweeper(products, store)

	orphans, err := sweeper.Sweep(ctx)
	assert.Error(t, err)
	assert.Nil(t, orphans)
}
