package models

import (
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
)

const (
	SuppliesAtLocal    = "local"
	SuppliesAtImported = "imported"
)

// Sku is one purchasable variant of a product. Code is unique across all SKUs,
// not only within its product.
type Sku struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	Code       string    `json:"sku"`
	Color      string    `json:"color"`
	Size       string    `json:"size"`
	SuppliesAt string    `json:"supplies_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateSkuRequest struct {
	Code       string `json:"sku" validate:"required,max=255"`
	Color      string `json:"color" validate:"required,max=255"`
	Size       string `json:"size" validate:"required,max=255"`
	SuppliesAt string `json:"supplies_at" validate:"required,oneof=local imported"`
}

// NewSku checks the field-level rules. Uniqueness of the code is a
// cross-entity property and is enforced by the repository.
func NewSku(productID int64, req CreateSkuRequest) (*Sku, error) {
	sku := &Sku{
		ProductID:  productID,
		Code:       strings.TrimSpace(req.Code),
		Color:      strings.TrimSpace(req.Color),
		Size:       strings.TrimSpace(req.Size),
		SuppliesAt: strings.ToLower(strings.TrimSpace(req.SuppliesAt)),
	}

	var fields []appErrors.FieldError

	if sku.ProductID <= 0 {
		fields = append(fields, appErrors.FieldError{Field: "product_id", Reason: "must reference an existing product"})
	}

	for _, r := range []struct{ field, value string }{
		{"sku", sku.Code},
		{"color", sku.Color},
		{"size", sku.Size},
		{"supplies_at", sku.SuppliesAt},
	} {
		if r.value == "" {
			fields = append(fields, appErrors.FieldError{Field: r.field, Reason: "must not be empty"})
		}
	}

	if sku.SuppliesAt != "" && sku.SuppliesAt != SuppliesAtLocal && sku.SuppliesAt != SuppliesAtImported {
		fields = append(fields, appErrors.FieldError{Field: "supplies_at", Reason: "must be one of: local, imported"})
	}

	if len(fields) > 0 {
		return nil, appErrors.FieldValidationError(fields)
	}

	return sku, nil
}
