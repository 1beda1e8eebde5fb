package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalog   service.CatalogService
	validator *validator.Validate
}

func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog, validator: utils.NewValidator()}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalog.CreateProduct(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalog.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) GetProductBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(r.PathValue("slug"))
		if slug == "" {
			response.Error(w, appErrors.BadRequestError("Invalid slug"))
			return
		}

		product, err := h.catalog.GetProductBySlug(r.Context(), slug)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalog.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts reads ?page= and ?pageSize=; the service clamps both.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := utils.QueryInt(r, "page", 1)
		pageSize := utils.QueryInt(r, "pageSize", 0)

		result, err := h.catalog.ListProducts(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Debug("Products listed",
			slog.Int("page", result.Page),
			slog.Int("pageSize", result.PageSize),
			slog.Int("total", result.Total),
		)

		response.Success(w, http.StatusOK, result)
	}
}

func (h *ProductHandler) CreateSku() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateSkuRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sku, err := h.catalog.CreateSku(r.Context(), productID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, sku)
	}
}

func (h *ProductHandler) ListSkus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		skus, err := h.catalog.ListSkus(r.Context(), productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, skus)
	}
}

func (h *ProductHandler) GetSku() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sku, err := h.catalog.GetSku(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sku)
	}
}
