package services

import (
	"context"
	"log"
	"time"

	"crackershop/internal/caching"
	"crackershop/internal/models"
	"crackershop/internal/repositories"
)

const catalogTTL = 5 * time.Minute

type CatalogService interface {
	CategoriesWithProducts(ctx context.Context) ([]*models.Category, error)
}

type catalogService struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	cache      caching.CatalogCache
}

func NewCatalogService(categories repositories.CategoryRepository, products repositories.ProductRepository, cache caching.CatalogCache) CatalogService {
	return &catalogService{
		categories: categories,
		products:   products,
		cache:      cache,
	}
}

// CategoriesWithProducts fetches all categories and all products and groups
// the products under the category whose id matches their categoryId. Every
// category carries an items array, empty when nothing matches; a product whose
// categoryId matches no category is omitted.
func (s *catalogService) CategoriesWithProducts(ctx context.Context) ([]*models.Category, error) {
	cached, err := s.cache.GetCatalog(ctx)
	if err != nil {
		log.Printf("catalog cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		category.Items = make([]*models.Product, 0)
		for _, product := range products {
			if product.CategoryID == category.ID {
				category.Items = append(category.Items, product)
			}
		}
	}

	if err := s.cache.SetCatalog(ctx, categories, catalogTTL); err != nil {
		log.Printf("catalog cache write failed: %v", err)
	}

	return categories, nil
}
