package repository

import (
	"fmt"

	"github.com/uptrace/bun"
)

// SelectCriteria composes filters, ordering, and pagination onto a select.
type SelectCriteria func(*bun.SelectQuery) *bun.SelectQuery

// UpdateCriteria customizes an update statement before it runs.
type UpdateCriteria func(*bun.UpdateQuery) *bun.UpdateQuery

// UpdateColumns restricts an update to the named columns. Zero values in
// those columns are written as-is, which is how a caller clears a flag.
func UpdateColumns(columns ...string) UpdateCriteria {
	return func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Column(columns...)
	}
}

// SelectBy filters on equality against a named column.
func SelectBy(column string, value any) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where(fmt.Sprintf("?TableAlias.%s = ?", column), value)
	}
}

// OrderBy orders by a named column, ascending.
func OrderBy(column string) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr(fmt.Sprintf("?TableAlias.%s ASC", column))
	}
}

// Paginate applies limit/offset. A non-positive limit means no limit.
func Paginate(limit, offset int) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if limit > 0 {
			q = q.Limit(limit)
		}
		if offset > 0 {
			q = q.Offset(offset)
		}
		return q
	}
}
