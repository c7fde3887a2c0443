package services

import (
	"context"
	"io"
	"log"

	"crackershop/internal/caching"
	"crackershop/internal/models"
	"crackershop/internal/repositories"
	"crackershop/internal/storage"
)

type ProductService interface {
	SaveImage(ctx context.Context, filename string, reader io.Reader, size int64) (string, error)
	Create(ctx context.Context, product *models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product) (bool, error)
}

type productService struct {
	products repositories.ProductRepository
	store    storage.ImageStore
	cache    caching.CatalogCache
}

func NewProductService(products repositories.ProductRepository, store storage.ImageStore, cache caching.CatalogCache) ProductService {
	return &productService{
		products: products,
		store:    store,
		cache:    cache,
	}
}

// SaveImage writes the upload to the image store and returns the public
// /uploads path recorded on the product row.
func (s *productService) SaveImage(ctx context.Context, filename string, reader io.Reader, size int64) (string, error) {
	name, err := s.store.Save(ctx, filename, reader, size)
	if err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *productService) Create(ctx context.Context, product *models.Product) (int64, error) {
	id, err := s.products.Create(ctx, product)
	if err != nil {
		return 0, err
	}
	s.invalidateCatalog(ctx)
	return id, nil
}

func (s *productService) Update(ctx context.Context, product *models.Product) (bool, error) {
	found, err := s.products.Update(ctx, product)
	if err != nil {
		return false, err
	}
	if found {
		s.invalidateCatalog(ctx)
	}
	return found, nil
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}
