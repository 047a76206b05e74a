package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
)

// paginate clamps a caller-supplied page/size into valid bounds and returns
// the LIMIT/OFFSET pair to embed in a query.
func paginate(page, size int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return size, (page - 1) * size
}

// sortDirection normalizes a caller-supplied sort order to ASC/DESC,
// defaulting to DESC for anything else.
func sortDirection(requested string) string {
	order := strings.ToUpper(requested)
	if order != "ASC" && order != "DESC" {
		return "DESC"
	}
	return order
}

// allowedSortColumn returns requested if it is a key of allowed, else
// fallback. Used where the sort key doubles as the column name.
func allowedSortColumn(requested string, allowed map[string]bool, fallback string) string {
	if requested != "" && allowed[requested] {
		return requested
	}
	return fallback
}

// mappedSortColumn returns the column allowed maps requested to, else
// fallback. Used where the sort key and column name can differ.
func mappedSortColumn(requested string, allowed map[string]string, fallback string) string {
	if column, ok := allowed[requested]; ok {
		return column
	}
	return fallback
}

// rowExists runs a "SELECT 1 ... LIMIT 1"-style existence probe, collapsing
// sql.ErrNoRows into a plain false instead of surfacing it as an error.
func rowExists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var exists int
	if err := db.GetContext(ctx, &exists, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
