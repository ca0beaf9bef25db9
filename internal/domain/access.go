package domain

// CanViewOrEditStaff reports whether p may view or change resources of staff:
// the staff's own user or a superuser.
func CanViewOrEditStaff(p Principal, staff *Staff) bool {
	if p.IsSuperuser {
		return true
	}
	return staff != nil && staff.UserID == p.UserID
}

// CanViewOrEditSchedule applies the staff rule to the staff that owns the schedule.
func CanViewOrEditSchedule(p Principal, owner *Staff) bool {
	return CanViewOrEditStaff(p, owner)
}

// CanViewUserPage reports whether p may see the page of targetUserID.
func CanViewUserPage(p Principal, targetUserID int64) bool {
	return p.IsSuperuser || p.UserID == targetUserID
}
