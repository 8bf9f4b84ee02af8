package service

import (
	"context"

	"storefront/internal/errors"
	"storefront/internal/models"
	repository "storefront/internal/repositories"
)

type CatalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) ([]models.Product, error) {

	if id == "" {
		return nil, errors.ValidationError("Product ID is required")
	}

	products, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return products, nil
}
