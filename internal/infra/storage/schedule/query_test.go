package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindOverlapping(t *testing.T) {
	from := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	query, args, err := buildFindOverlapping(5, from, to)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, staff_id, start_at, end_at, name, kind, created_at FROM schedules "+
			"WHERE staff_id = $1 AND (start_at < $2 AND end_at > $3) ORDER BY start_at ASC",
		query)
	assert.Equal(t, []interface{}{int64(5), to, from}, args)
}

func TestBuildExistsOverlapping_SamePredicateAsRead(t *testing.T) {
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	query, args, err := buildExistsOverlapping(5, start, end)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT 1 FROM schedules WHERE staff_id = $1 AND (start_at < $2 AND end_at > $3) LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(5), end, start}, args)
}

func TestBuildFindByStaffFrom(t *testing.T) {
	from := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	query, args, err := buildFindByStaffFrom(3, from)

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE staff_id = $1 AND start_at >= $2 ORDER BY start_at ASC")
	assert.Equal(t, []interface{}{int64(3), from}, args)
}

func TestBuildFindByUserFrom(t *testing.T) {
	from := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	query, args, err := buildFindByUserFrom(8, from)

	require.NoError(t, err)
	assert.Contains(t, query, "FROM schedules sc JOIN staff st ON st.id = sc.staff_id")
	assert.Contains(t, query, "WHERE st.user_id = $1 AND sc.start_at >= $2")
	assert.Equal(t, []interface{}{int64(8), from}, args)
}
