package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/muhamad-rafli/inventory-api/internal/cache"
	apperrors "github.com/muhamad-rafli/inventory-api/internal/errors"
	"github.com/muhamad-rafli/inventory-api/internal/models"
	repository "github.com/muhamad-rafli/inventory-api/internal/repositories"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, payload *models.ProductPayload) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload *models.ProductPayload) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	var cached []*models.Product

	found, err := s.cache.Get(ctx, cache.ProductListKey, &cached)
	if err != nil {
		slog.Warn("Product list cache read failed", slog.String("error", err.Error()))
	}
	if found {
		return cached, nil
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	// An empty table answers [], not null.
	if products == nil {
		products = []*models.Product{}
	}

	if err := s.cache.Set(ctx, cache.ProductListKey, products, 0); err != nil {
		slog.Warn("Product list cache write failed", slog.String("error", err.Error()))
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	cached := &models.Product{}

	found, err := s.cache.Get(ctx, key, cached)
	if err != nil {
		slog.Warn("Product cache read failed", slog.String("error", err.Error()))
	}
	if found {
		return cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		slog.Warn("Product cache write failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, payload *models.ProductPayload) (*models.Product, error) {

	id, err := s.repo.CreateProduct(ctx, payload)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to create product").WithError(err)
	}

	s.invalidate(ctx, id)

	return payload.Echo(id), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, payload *models.ProductPayload) (*models.Product, error) {

	err := s.repo.UpdateProduct(ctx, id, payload)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return payload.Echo(id), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Product not found").WithError(err)
		}

		return apperrors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

// invalidate drops the per-product entry and the list entry after any
// committed write. Cache failures are logged, never surfaced.
func (s *productService) invalidate(ctx context.Context, id int64) {

	key := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Product cache invalidation failed", slog.String("error", err.Error()))
	}

	if err := s.cache.Delete(ctx, cache.ProductListKey); err != nil {
		slog.Warn("Product list cache invalidation failed", slog.String("error", err.Error()))
	}
}
