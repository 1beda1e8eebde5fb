package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cacheMocks "github.com/aaravmahajanofficial/superadmin-catalog/internal/cache/mocks"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/config"
	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	repository "github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pages = config.Catalog{DefaultPageSize: 10, MaxPageSize: 100}

type catalogFixture struct {
	products *mocks.ProductRepository
	skus     *mocks.SkuRepository
	cache    *cacheMocks.Cache
	svc      service.CatalogService
}

func newCatalogFixture(withCache bool) *catalogFixture {
	f := &catalogFixture{
		products: new(mocks.ProductRepository),
		skus:     new(mocks.SkuRepository),
	}

	if withCache {
		f.cache = new(cacheMocks.Cache)
		f.svc = service.NewCatalogService(f.products, f.skus, f.cache, pages)
	} else {
		f.svc = service.NewCatalogService(f.products, f.skus, nil, pages)
	}

	return f
}

func (f *catalogFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.products.AssertExpectations(t)
	f.skus.AssertExpectations(t)

	if f.cache != nil {
		f.cache.AssertExpectations(t)
	}
}

func teeRequest() *models.CreateProductRequest {
	cost := decimal.RequireFromString("5.00")
	srp := decimal.RequireFromString("15.00")

	return &models.CreateProductRequest{
		Name:        "Classic Tee",
		Description: "Plain cotton t-shirt",
		Category:    "Tops",
		Barcode:     "123456789012",
		UPC:         "12345678901",
		InStock:     10,
		Cost:        &cost,
		SRP:         &srp,
	}
}

func storedTee() *models.Product {
	return &models.Product{
		ID:          1,
		Name:        "Classic Tee",
		Slug:        "classic-tee",
		Description: "Plain cotton t-shirt",
		Category:    "Tops",
		Barcode:     "123456789012",
		UPC:         "12345678901",
		InStock:     10,
		Cost:        decimal.RequireFromString("5.00"),
		SRP:         decimal.RequireFromString("15.00"),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - slug derived from name", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(false)
		f.products.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Slug == "classic-tee" && p.Name == "Classic Tee"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Product).ID = 1
		}).Return(nil).Once()

		// Act
		product, err := f.svc.CreateProduct(ctx, teeRequest())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "classic-tee", product.Slug)
		f.assertExpectations(t)
	})

	t.Run("Success - markup stripped, plain characters kept", func(t *testing.T) {
		f := newCatalogFixture(false)
		req := teeRequest()
		req.Name = "<b>Tom & Jerry</b> Tee"
		req.Description = `<script>alert(1)</script>Soft`

		f.products.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := f.svc.CreateProduct(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "Tom & Jerry Tee", product.Name)
		assert.Equal(t, "tom-and-jerry-tee", product.Slug)
		assert.Equal(t, "Soft", product.Description)
		f.assertExpectations(t)
	})

	t.Run("Failure - validation, repository untouched", func(t *testing.T) {
		f := newCatalogFixture(false)
		req := teeRequest()
		req.InStock = -1
		negative := decimal.RequireFromString("-2")
		req.Cost = &negative

		product, err := f.svc.CreateProduct(ctx, req)

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Len(t, appErr.Fields, 2)
		f.products.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - duplicate slug", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("CreateProduct", mock.Anything, mock.Anything).
			Return(fmt.Errorf("slug %q: %w", "classic-tee", repository.ErrDuplicateSlug)).Once()

		product, err := f.svc.CreateProduct(ctx, teeRequest())

		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeConflict))
		assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
		f.assertExpectations(t)
	})

	t.Run("Failure - database error", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("CreateProduct", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		_, err := f.svc.CreateProduct(ctx, teeRequest())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
		f.assertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	key := "catalog:product:1"

	t.Run("Cache hit skips repository", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(true)
		f.cache.On("Get", mock.Anything, key, mock.AnythingOfType("*models.Product")).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*models.Product) = *storedTee()
			}).Return(true, nil).Once()

		// Act
		product, err := f.svc.GetProduct(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "classic-tee", product.Slug)
		f.products.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		f := newCatalogFixture(true)
		stored := storedTee()

		f.cache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		f.cache.On("Set", mock.Anything, key, stored, time.Duration(0)).Return(nil).Once()

		product, err := f.svc.GetProduct(ctx, 1)

		require.NoError(t, err)
		assert.Same(t, stored, product)
		f.assertExpectations(t)
	})

	t.Run("Cache failures do not fail the read", func(t *testing.T) {
		f := newCatalogFixture(true)
		stored := storedTee()

		f.cache.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down")).Once()
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		f.cache.On("Set", mock.Anything, key, stored, time.Duration(0)).Return(errors.New("redis down")).Once()

		product, err := f.svc.GetProduct(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		f.assertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(9)).
			Return(nil, fmt.Errorf("product 9: %w", repository.ErrNotFound)).Once()

		product, err := f.svc.GetProduct(ctx, 9)

		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.assertExpectations(t)
	})

	t.Run("Database error", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(nil, errors.New("timeout")).Once()

		_, err := f.svc.GetProduct(ctx, 1)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
		f.assertExpectations(t)
	})
}

func TestGetProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		f := newCatalogFixture(true)
		stored := storedTee()

		f.cache.On("Get", mock.Anything, "catalog:product-slug:classic-tee", mock.Anything).Return(false, nil).Once()
		f.products.On("GetProductBySlug", mock.Anything, "classic-tee").Return(stored, nil).Once()
		f.cache.On("Set", mock.Anything, "catalog:product-slug:classic-tee", stored, time.Duration(0)).Return(nil).Once()

		product, err := f.svc.GetProductBySlug(ctx, "classic-tee")

		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		f.assertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductBySlug", mock.Anything, "nope").Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.GetProductBySlug(ctx, "nope")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - rename keeps slug and invalidates cache", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(true)
		newName := "Vintage Tee"
		newCost := decimal.RequireFromString("6.25")

		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.products.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == newName && p.Slug == "classic-tee" && p.Cost.Equal(newCost)
		})).Return(nil).Once()
		f.cache.On("Delete", mock.Anything, "catalog:product:1", "catalog:product-slug:classic-tee").Return(nil).Once()

		// Act
		product, err := f.svc.UpdateProduct(ctx, 1, &models.UpdateProductRequest{Name: &newName, Cost: &newCost})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newName, product.Name)
		assert.Equal(t, "classic-tee", product.Slug)
		f.assertExpectations(t)
	})

	t.Run("Failure - validation leaves row untouched", func(t *testing.T) {
		f := newCatalogFixture(true)
		negative := int64(-5)

		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()

		product, err := f.svc.UpdateProduct(ctx, 1, &models.UpdateProductRequest{InStock: &negative})

		assert.Nil(t, product)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		f.products.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
		f.cache.AssertNotCalled(t, "Delete")
		f.assertExpectations(t)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(2)).Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.UpdateProduct(ctx, 2, &models.UpdateProductRequest{})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.assertExpectations(t)
	})

	t.Run("Failure - deleted between read and write", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.products.On("UpdateProduct", mock.Anything, mock.Anything).Return(repository.ErrNotFound).Once()

		_, err := f.svc.UpdateProduct(ctx, 1, &models.UpdateProductRequest{})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.assertExpectations(t)
	})

	t.Run("Cache invalidation failure is tolerated", func(t *testing.T) {
		f := newCatalogFixture(true)
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.products.On("UpdateProduct", mock.Anything, mock.Anything).Return(nil).Once()
		f.cache.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		product, err := f.svc.UpdateProduct(ctx, 1, &models.UpdateProductRequest{})

		require.NoError(t, err)
		assert.NotNil(t, product)
		f.assertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name             string
		page, size       int
		wantPage, wantSz int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative input", -4, -1, 1, 10},
		{"capped size", 2, 500, 2, 100},
		{"passthrough", 3, 5, 3, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCatalogFixture(false)
			products := []*models.Product{storedTee()}

			f.products.On("ListProducts", mock.Anything, tc.wantPage, tc.wantSz).Return(products, 21, nil).Once()

			resp, err := f.svc.ListProducts(ctx, tc.page, tc.size)

			require.NoError(t, err)
			assert.Equal(t, 21, resp.Total)
			assert.Equal(t, tc.wantPage, resp.Page)
			assert.Equal(t, tc.wantSz, resp.PageSize)
			assert.Equal(t, products, resp.Data)
			f.assertExpectations(t)
		})
	}

	t.Run("Database error", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("ListProducts", mock.Anything, 1, 10).Return(nil, 0, errors.New("timeout")).Once()

		resp, err := f.svc.ListProducts(ctx, 1, 10)

		assert.Nil(t, resp)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestCountProducts(t *testing.T) {
	f := newCatalogFixture(false)
	f.products.On("CountProducts", mock.Anything).Return(int64(12), nil).Once()

	count, err := f.svc.CountProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	f.assertExpectations(t)
}

func skuRequest() *models.CreateSkuRequest {
	return &models.CreateSkuRequest{Code: "CT-RED-M", Color: "red", Size: "M", SuppliesAt: "local"}
}

func TestCreateSku(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.skus.On("CreateSku", mock.Anything, mock.MatchedBy(func(s *models.Sku) bool {
			return s.ProductID == 1 && s.Code == "CT-RED-M" && s.SuppliesAt == models.SuppliesAtLocal
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Sku).ID = 5
		}).Return(nil).Once()

		// Act
		sku, err := f.svc.CreateSku(ctx, 1, skuRequest())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(5), sku.ID)
		f.assertExpectations(t)
	})

	t.Run("Failure - empty fields checked before lookups", func(t *testing.T) {
		f := newCatalogFixture(false)
		req := skuRequest()
		req.Color = "  "

		_, err := f.svc.CreateSku(ctx, 1, req)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		f.products.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
		f.skus.AssertNotCalled(t, "CreateSku", mock.Anything, mock.Anything)
	})

	t.Run("Failure - unknown product", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(77)).Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.CreateSku(ctx, 77, skuRequest())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.skus.AssertNotCalled(t, "CreateSku", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Failure - duplicate code on another product", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(2)).Return(storedTee(), nil).Once()
		f.skus.On("CreateSku", mock.Anything, mock.Anything).
			Return(fmt.Errorf("sku %q: %w", "CT-RED-M", repository.ErrDuplicateSku)).Once()

		_, err := f.svc.CreateSku(ctx, 2, skuRequest())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeConflict))
		f.assertExpectations(t)
	})

	t.Run("Failure - product removed before insert", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.skus.On("CreateSku", mock.Anything, mock.Anything).Return(repository.ErrProductNotFound).Once()

		_, err := f.svc.CreateSku(ctx, 1, skuRequest())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.assertExpectations(t)
	})
}

func TestGetSku(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.skus.On("GetSkuByID", mock.Anything, int64(5)).Return(&models.Sku{ID: 5, Code: "CT-RED-M"}, nil).Once()

		sku, err := f.svc.GetSku(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "CT-RED-M", sku.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.skus.On("GetSkuByID", mock.Anything, int64(6)).Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.GetSku(ctx, 6)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})
}

func TestListSkus(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists product skus", func(t *testing.T) {
		f := newCatalogFixture(false)
		skus := []*models.Sku{{ID: 1, Code: "A"}, {ID: 2, Code: "B"}}

		f.products.On("GetProductByID", mock.Anything, int64(1)).Return(storedTee(), nil).Once()
		f.skus.On("ListSkusByProduct", mock.Anything, int64(1)).Return(skus, nil).Once()

		got, err := f.svc.ListSkus(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, skus, got)
		f.assertExpectations(t)
	})

	t.Run("Unknown product", func(t *testing.T) {
		f := newCatalogFixture(false)
		f.products.On("GetProductByID", mock.Anything, int64(3)).Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.ListSkus(ctx, 3)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		f.skus.AssertNotCalled(t, "ListSkusByProduct", mock.Anything, mock.Anything)
	})
}
