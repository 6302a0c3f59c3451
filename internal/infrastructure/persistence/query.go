package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/textile/backend/internal/domain/shared"
)

// applyPagination applies page-based offset and limit to a query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyOrdering applies a sort clause restricted to an allowlist of columns.
// OrderBy values outside the allowlist fall back to the default so user input
// never reaches the ORDER BY clause raw.
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed map[string]bool, fallback string) *gorm.DB {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		return query.Order(fallback)
	}
	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		dir = "DESC"
	}
	return query.Order(column + " " + dir)
}

// searchPattern builds an ILIKE pattern for a search term
func searchPattern(term string) string {
	return "%" + term + "%"
}
