package models

// DashboardCounts is recomputed on every dashboard request and never stored.
type DashboardCounts struct {
	UserCount    int64 `json:"user_count"`
	ProductCount int64 `json:"product_count"`
}
