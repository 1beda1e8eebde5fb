package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/cache"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/config"
	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/metrics"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error)
	CountProducts(ctx context.Context) (int64, error)
	CreateSku(ctx context.Context, productID int64, req *models.CreateSkuRequest) (*models.Sku, error)
	GetSku(ctx context.Context, id int64) (*models.Sku, error)
	ListSkus(ctx context.Context, productID int64) ([]*models.Sku, error)
}

type catalogService struct {
	products repository.ProductRepository
	skus     repository.SkuRepository
	cache    cache.Cache
	pages    config.Catalog
	policy   *bluemonday.Policy
}

// NewCatalogService wires the catalog. productCache may be nil, in which case
// every read goes to the repository.
func NewCatalogService(products repository.ProductRepository, skus repository.SkuRepository, productCache cache.Cache, pages config.Catalog) CatalogService {
	return &catalogService{
		products: products,
		skus:     skus,
		cache:    productCache,
		pages:    pages,
		policy:   bluemonday.StrictPolicy(),
	}
}

// clean strips markup but keeps plain characters such as '&' intact.
func (s *catalogService) clean(value string) string {
	return html.UnescapeString(s.policy.Sanitize(value))
}

func (s *catalogService) cleanPtr(value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := s.clean(*value)

	return &cleaned
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	attrs := *req
	attrs.Name = s.clean(req.Name)
	attrs.Description = s.clean(req.Description)
	attrs.Category = s.clean(req.Category)
	attrs.Barcode = s.clean(req.Barcode)
	attrs.UPC = s.clean(req.UPC)

	product, err := models.NewProduct(attrs)
	if err != nil {
		logger.Warn("Product rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			metrics.RecordConflict(metrics.EntityProduct)
			logger.Warn("Product slug conflict", slog.String("slug", product.Slug))

			return nil, appErrors.ConflictError("A product with this name already exists").
				WithDetail(fmt.Sprintf("slug %q is already taken", product.Slug)).
				WithError(err)
		}

		logger.Error("Failed to create product", slog.String("error", err.Error()))

		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	metrics.RecordCreated(metrics.EntityProduct)
	logger.Info("Product created", slog.Int64("productId", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.readThrough(ctx, cache.ProductKey(id), func() (*models.Product, error) {
		return s.products.GetProductByID(ctx, id)
	})
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.readThrough(ctx, cache.ProductSlugKey(slug), func() (*models.Product, error) {
		return s.products.GetProductBySlug(ctx, slug)
	})
}

// readThrough serves key from the cache and falls back to load. Cache errors
// are logged and otherwise ignored.
func (s *catalogService) readThrough(ctx context.Context, key string, load func() (*models.Product, error)) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	if s.cache != nil {
		var cached models.Product

		found, err := s.cache.Get(ctx, key, &cached)

		switch {
		case err != nil:
			metrics.RecordCacheError()
			logger.Warn("Product cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		case found:
			metrics.RecordCacheHit()
			return &cached, nil
		default:
			metrics.RecordCacheMiss()
		}
	}

	product, err := load()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		logger.Error("Failed to fetch product", slog.String("key", key), slog.String("error", err.Error()))

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, 0); err != nil {
			logger.Warn("Product cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	return product, nil
}

// UpdateProduct always reads the stored row, never the cache, before merging.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	changes := *req
	changes.Name = s.cleanPtr(req.Name)
	changes.Description = s.cleanPtr(req.Description)
	changes.Category = s.cleanPtr(req.Category)
	changes.Barcode = s.cleanPtr(req.Barcode)
	changes.UPC = s.cleanPtr(req.UPC)

	if err := product.Apply(&changes); err != nil {
		logger.Warn("Product update rejected", slog.Int64("productId", id), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		logger.Error("Failed to update product", slog.Int64("productId", id), slog.String("error", err.Error()))

		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.ProductKey(id), cache.ProductSlugKey(product.Slug)); err != nil {
			logger.Warn("Product cache invalidation failed", slog.Int64("productId", id), slog.String("error", err.Error()))
		}
	}

	logger.Info("Product updated", slog.Int64("productId", id))

	return product, nil
}

// normalizePage clamps the paging input: page < 1 becomes 1, a non-positive
// size becomes the default and sizes above the maximum are capped.
func (s *catalogService) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = s.pages.DefaultPageSize
	}

	if s.pages.MaxPageSize > 0 && pageSize > s.pages.MaxPageSize {
		pageSize = s.pages.MaxPageSize
	}

	return page, pageSize
}

func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error) {
	page, pageSize = s.normalizePage(page, pageSize)

	products, total, err := s.products.ListProducts(ctx, page, pageSize)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to list products", slog.String("error", err.Error()))
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return &models.PaginatedResponse{
		Data:     products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *catalogService) CountProducts(ctx context.Context) (int64, error) {
	count, err := s.products.CountProducts(ctx)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	return count, nil
}

// CreateSku validates the attributes, then checks the product, then inserts.
// The insert itself decides code uniqueness.
func (s *catalogService) CreateSku(ctx context.Context, productID int64, req *models.CreateSkuRequest) (*models.Sku, error) {
	logger := middleware.LoggerFromContext(ctx)

	sku, err := models.NewSku(productID, models.CreateSkuRequest{
		Code:       s.clean(req.Code),
		Color:      s.clean(req.Color),
		Size:       s.clean(req.Size),
		SuppliesAt: s.clean(req.SuppliesAt),
	})
	if err != nil {
		logger.Warn("SKU rejected", slog.Int64("productId", productID), slog.String("error", err.Error()))
		return nil, err
	}

	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.skus.CreateSku(ctx, sku); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSku):
			metrics.RecordConflict(metrics.EntitySku)
			logger.Warn("SKU code conflict", slog.String("sku", sku.Code))

			return nil, appErrors.ConflictError("SKU code already exists").
				WithDetail(fmt.Sprintf("sku %q is already taken", sku.Code)).
				WithError(err)
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		logger.Error("Failed to create SKU", slog.String("error", err.Error()))

		return nil, appErrors.DatabaseError("Failed to create SKU").WithError(err)
	}

	metrics.RecordCreated(metrics.EntitySku)
	logger.Info("SKU created", slog.Int64("skuId", sku.ID), slog.Int64("productId", productID))

	return sku, nil
}

func (s *catalogService) GetSku(ctx context.Context, id int64) (*models.Sku, error) {
	sku, err := s.skus.GetSkuByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("SKU not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch SKU").WithError(err)
	}

	return sku, nil
}

// ListSkus returns NotFound for an unknown product rather than an empty list.
func (s *catalogService) ListSkus(ctx context.Context, productID int64) ([]*models.Sku, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	skus, err := s.skus.ListSkusByProduct(ctx, productID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch SKUs").WithError(err)
	}

	return skus, nil
}
