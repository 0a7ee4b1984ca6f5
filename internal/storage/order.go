// ABOUTME: Shared manual-ordering helpers used by every repository.
// ABOUTME: Create appends at max(order)+1; reorder rewrites order as list index.
package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// nextOrder computes the order value for a new sibling: max(order)+1 within
// the parent, or 0 when the parent has no children yet. parentCol may be
// empty for tables whose rows form a single global list.
func (d *DB) nextOrder(table, parentCol, parentID string) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX("order"), -1) + 1 FROM %s`, table)
	var args []interface{}
	if parentCol != "" {
		query += fmt.Sprintf(` WHERE %s = ?`, parentCol)
		args = append(args, parentID)
	}

	var next int
	if err := d.queryRowScan(query, args, &next); err != nil {
		return 0, fmt.Errorf("next order for %s: %w", table, err)
	}
	return next, nil
}

// reorderRows rewrites each row's order to its index in ids, one statement
// per member. The caller supplies the complete sibling set; rows omitted from
// ids keep their stale order values.
func (d *DB) reorderRows(table string, ids []uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET "order" = ? WHERE id = ?`, table)
	for i, id := range ids {
		if _, err := d.exec(query, i, id.String()); err != nil {
			return fmt.Errorf("reorder %s: %w", table, err)
		}
	}
	return nil
}
