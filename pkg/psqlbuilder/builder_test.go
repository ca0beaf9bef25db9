package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("stores").
		Where(squirrel.Eq{"id": 7}).
		Where(squirrel.Eq{"name": "Shibuya"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM stores WHERE id = $1 AND name = $2", query)
	assert.Equal(t, []interface{}{7, "Shibuya"}, args)
}

func TestUpdateAndDelete(t *testing.T) {
	query, args, err := Update("schedules").Set("name", "x").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE schedules SET name = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)

	query, _, err = Delete("schedules").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM schedules WHERE id = $1", query)
}
