package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/careernest/backend/internal/domain/shared"
)

// searchFunc applies an entity-specific search clause to the query.
// pattern already carries the surrounding wildcards.
type searchFunc func(query *gorm.DB, pattern string) *gorm.DB

// applyFilter applies search, ordering and pagination to the query.
// The sort field is validated against the per-entity whitelist to keep
// user input out of the ORDER BY clause.
func applyFilter(query *gorm.DB, filter shared.Filter, sortFields map[string]bool, search searchFunc) *gorm.DB {
	query = applyFilterWithoutPagination(query, filter, search)

	orderBy := ValidateSortField(filter.OrderBy, sortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyFilterWithoutPagination applies the search clause only
func applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter, search searchFunc) *gorm.DB {
	if filter.Search != "" && search != nil {
		query = search(query, "%"+filter.Search+"%")
	}
	return query
}

// translateDuplicate maps a unique constraint violation to the shared
// duplicate-key error so services can branch on it.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}
