package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateSlug   = errors.New("product slug already exists")
	ErrDuplicateSku    = errors.New("sku code already exists")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrProductNotFound = errors.New("referenced product does not exist")
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == code
}
