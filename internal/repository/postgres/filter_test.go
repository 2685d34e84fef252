package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamanh/retail-store-backend/internal/repository"
)

func floatPtr(f float64) *float64 { return &f }

func TestWhereBuilderEmpty(t *testing.T) {
	var b whereBuilder
	assert.Equal(t, "", b.clause())
	assert.Empty(t, b.args)
}

func TestWhereBuilderConditions(t *testing.T) {
	var b whereBuilder
	b.equal("category_id", "cat-1")
	b.contains("name", "key")
	b.equal("supplier_id", "") // empty values add nothing

	assert.Equal(t, " WHERE category_id = $1 AND name ILIKE $2", b.clause())
	assert.Equal(t, []any{"cat-1", "%key%"}, b.args)
}

func TestWhereBuilderBetween(t *testing.T) {
	var b whereBuilder
	b.between("price", repository.Range{Start: floatPtr(10), End: floatPtr(20)})
	assert.Equal(t, " WHERE price >= $1 AND price <= $2", b.clause())

	var open whereBuilder
	open.between("price", repository.Range{End: floatPtr(20)})
	assert.Equal(t, " WHERE price <= $1", open.clause())

	var all whereBuilder
	all.between("price", repository.Range{})
	assert.Equal(t, "", all.clause())
}

func TestPageClause(t *testing.T) {
	assert.Equal(t, "", pageClause(repository.Page{}))
	assert.Equal(t, " OFFSET 10", pageClause(repository.Page{Skip: 10}))
	assert.Equal(t, " LIMIT 5", pageClause(repository.Page{Limit: 5}))
	assert.Equal(t, " OFFSET 10 LIMIT 5", pageClause(repository.Page{Skip: 10, Limit: 5}))
}

func TestBuildUpdate(t *testing.T) {
	columns := map[string]string{"name": "name", "img": "image"}
	patch := map[string]any{"name": "New", "img": "x.png", "bogus": "ignored"}

	query, args := buildUpdate("categories", columns, patch, "id-1")
	assert.Equal(t,
		"UPDATE categories SET image = $2, name = $3, updated_at = NOW() WHERE id = $1",
		query)
	assert.Equal(t, []any{"id-1", "x.png", "New"}, args)
}

func TestBuildUpdateEmptyPatch(t *testing.T) {
	query, args := buildUpdate("categories", map[string]string{"name": "name"}, map[string]any{}, "id-1")
	// Still touches updated_at, so RowsAffected distinguishes missing ids.
	assert.Equal(t, "UPDATE categories SET updated_at = NOW() WHERE id = $1", query)
	assert.Equal(t, []any{"id-1"}, args)
}
