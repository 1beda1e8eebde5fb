package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/superadmin-catalog/internal/errors"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/slug"
	"github.com/shopspring/decimal"
)

// Money columns are NUMERIC(10,2).
const moneyScale = 2

// MaxSlugLength matches products.slug VARCHAR(255). Transliteration can make
// a slug longer than the name it came from.
const MaxSlugLength = 255

var maxMoney = decimal.New(1, 8)

// Product is one catalog item. Slug is assigned by NewProduct and is never
// recomputed, even when the name is edited later.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"desc"`
	Category    string          `json:"category"`
	Barcode     string          `json:"barcode"`
	UPC         string          `json:"upc"`
	InStock     int64           `json:"in_stock"`
	Cost        decimal.Decimal `json:"cost"`
	SRP         decimal.Decimal `json:"srp"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"desc"`
	Category    string           `json:"category" validate:"required,max=255"`
	Barcode     string           `json:"barcode" validate:"required,max=255"`
	UPC         string           `json:"upc" validate:"required,max=255"`
	InStock     int64            `json:"in_stock" validate:"gte=0"`
	Cost        *decimal.Decimal `json:"cost" validate:"required"`
	SRP         *decimal.Decimal `json:"srp" validate:"required"`
}

// UpdateProductRequest carries only the fields being changed. There is no slug field.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"desc,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=255"`
	Barcode     *string          `json:"barcode,omitempty" validate:"omitempty,max=255"`
	UPC         *string          `json:"upc,omitempty" validate:"omitempty,max=255"`
	InStock     *int64           `json:"in_stock,omitempty" validate:"omitempty,gte=0"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	SRP         *decimal.Decimal `json:"srp,omitempty"`
}

// NewProduct validates the attributes and derives the slug from the name.
func NewProduct(req CreateProductRequest) (*Product, error) {
	product := &Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Barcode:     strings.TrimSpace(req.Barcode),
		UPC:         strings.TrimSpace(req.UPC),
		InStock:     req.InStock,
	}

	var missing []appErrors.FieldError

	if req.Cost != nil {
		product.Cost = *req.Cost
	} else {
		missing = append(missing, appErrors.FieldError{Field: "cost", Reason: "is required"})
	}

	if req.SRP != nil {
		product.SRP = *req.SRP
	} else {
		missing = append(missing, appErrors.FieldError{Field: "srp", Reason: "is required"})
	}

	fields := append(product.validate(), missing...)

	if product.Name != "" {
		s, err := slug.Generate(product.Name)

		switch {
		case errors.Is(err, slug.ErrInvalidArgument):
			fields = append(fields, appErrors.FieldError{Field: "name", Reason: "must contain at least one letter or digit"})
		case err != nil:
			return nil, appErrors.InternalError("Failed to generate slug").WithError(err)
		case len(s) > MaxSlugLength:
			fields = append(fields, appErrors.FieldError{Field: "name", Reason: fmt.Sprintf("produces a slug longer than %d characters", MaxSlugLength)})
		default:
			product.Slug = s
		}
	}

	if len(fields) > 0 {
		return nil, appErrors.FieldValidationError(fields)
	}

	return product, nil
}

// Apply merges the non-nil fields of req into p and re-validates the result.
// p is left untouched when validation fails.
func (p *Product) Apply(req *UpdateProductRequest) error {
	updated := *p

	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		updated.Category = strings.TrimSpace(*req.Category)
	}
	if req.Barcode != nil {
		updated.Barcode = strings.TrimSpace(*req.Barcode)
	}
	if req.UPC != nil {
		updated.UPC = strings.TrimSpace(*req.UPC)
	}
	if req.InStock != nil {
		updated.InStock = *req.InStock
	}
	if req.Cost != nil {
		updated.Cost = *req.Cost
	}
	if req.SRP != nil {
		updated.SRP = *req.SRP
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*p = updated

	return nil
}

func (p *Product) Validate() error {
	if fields := p.validate(); len(fields) > 0 {
		return appErrors.FieldValidationError(fields)
	}

	return nil
}

func (p *Product) validate() []appErrors.FieldError {
	var fields []appErrors.FieldError

	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"category", p.Category},
		{"barcode", p.Barcode},
		{"upc", p.UPC},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, appErrors.FieldError{Field: r.field, Reason: "must not be empty"})
		}
	}

	if p.InStock < 0 {
		fields = append(fields, appErrors.FieldError{Field: "in_stock", Reason: "must not be negative"})
	}

	fields = append(fields, validateMoney("cost", p.Cost)...)
	fields = append(fields, validateMoney("srp", p.SRP)...)

	return fields
}

func validateMoney(field string, amount decimal.Decimal) []appErrors.FieldError {
	var fields []appErrors.FieldError

	if amount.IsNegative() {
		fields = append(fields, appErrors.FieldError{Field: field, Reason: "must not be negative"})
	}

	if !amount.Equal(amount.Round(moneyScale)) {
		fields = append(fields, appErrors.FieldError{Field: field, Reason: "must have at most 2 decimal places"})
	}

	if amount.GreaterThanOrEqual(maxMoney) {
		fields = append(fields, appErrors.FieldError{Field: field, Reason: "must be less than 100000000"})
	}

	return fields
}
