// Package basemodels holds the shared response shapes used by every domain.
package basemodels

// PaginateResult is the standard paginated listing envelope.
type PaginateResult[T any] struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	ItemCount int64 `json:"itemCount"`
	Items     []T   `json:"items"`
}
