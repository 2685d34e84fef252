package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phamanh/retail-store-backend/internal/repository"
)

// whereBuilder accumulates WHERE conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers a value and returns its placeholder.
func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) equal(column, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, column+" = "+b.arg(value))
}

// contains adds a case-insensitive substring match.
func (b *whereBuilder) contains(column, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, column+" ILIKE "+b.arg("%"+value+"%"))
}

// between adds inclusive bounds; a nil bound matches all on that side.
func (b *whereBuilder) between(column string, r repository.Range) {
	if r.Start != nil {
		b.conds = append(b.conds, column+" >= "+b.arg(*r.Start))
	}
	if r.End != nil {
		b.conds = append(b.conds, column+" <= "+b.arg(*r.End))
	}
}

// clause renders " WHERE ..." or "" when no condition was added.
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// pageClause renders OFFSET/LIMIT. Skip and limit come from validated
// numeric query parameters; a zero limit means unbounded.
func pageClause(p repository.Page) string {
	var sb strings.Builder
	if p.Skip > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", p.Skip)
	}
	if p.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", p.Limit)
	}
	return sb.String()
}

// buildUpdate renders an UPDATE statement for the patch fields that map to a
// known column, always refreshing updated_at. Field order is sorted so the
// statement is deterministic.
func buildUpdate(table string, columns map[string]string, patch map[string]any, id string) (string, []any) {
	fields := make([]string, 0, len(patch))
	for field := range patch {
		if _, ok := columns[field]; ok {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	sets := make([]string, 0, len(fields)+1)
	args := []any{id}
	for _, field := range fields {
		args = append(args, patch[field])
		sets = append(sets, fmt.Sprintf("%s = $%d", columns[field], len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", "))
	return query, args
}
