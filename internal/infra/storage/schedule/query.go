package schedule

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffBooking/pkg/psqlbuilder"
)

const tableName = "schedules"

var columns = []string{
	"id",
	"staff_id",
	"start_at",
	"end_at",
	"name",
	"kind",
	"created_at",
}

// overlaps условие пересечения с полуоткрытым окном [start, end).
// Одно и то же условие используется и при построении календаря, и при проверке конфликта.
func overlaps(start, end time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Lt{"start_at": end},
		squirrel.Gt{"end_at": start},
	}
}

func buildFindOverlapping(staffID int64, from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(overlaps(from, to)).
		OrderBy("start_at ASC").
		ToSql()
}

func buildExistsOverlapping(staffID int64, start, end time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(overlaps(start, end)).
		Limit(1).
		ToSql()
}

func buildFindByStaffFrom(staffID int64, from time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"start_at": from}).
		OrderBy("start_at ASC").
		ToSql()
}

func buildFindByUserFrom(userID int64, from time.Time) (string, []interface{}, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "sc." + c
	}
	return psqlbuilder.Select(qualified...).
		From(tableName + " sc").
		Join("staff st ON st.id = sc.staff_id").
		Where(squirrel.Eq{"st.user_id": userID}).
		Where(squirrel.GtOrEq{"sc.start_at": from}).
		OrderBy("sc.start_at ASC").
		ToSql()
}
