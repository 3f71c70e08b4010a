package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/predio/backend/internal/domain/shared"
)

// sortableColumns lists the columns list endpoints may order by. Anything
// else falls back to created_at to keep raw input out of the ORDER BY clause.
var sortableColumns = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"number":           true,
	"email":            true,
	"full_name":        true,
	"status":           true,
	"level":            true,
	"category":         true,
	"transaction_date": true,
	"amount":           true,
}

// applyOrdering applies validated ordering from the filter
func applyOrdering(query *gorm.DB, filter shared.Filter) *gorm.DB {
	column := filter.OrderBy
	if !sortableColumns[column] {
		column = "created_at"
	}
	dir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		dir = "ASC"
	}
	return query.Order(column + " " + dir)
}

// applyPagination applies page/page-size limits from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// applyListFilter applies ordering and pagination in one step
func applyListFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	filter.Normalize()
	return applyPagination(applyOrdering(query, filter), filter)
}
