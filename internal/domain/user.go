package domain

// User represents an authentication principal stored in the database
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsSuperuser  bool
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID      int64
	IsSuperuser bool
}

// Principal returns the principal view of the user
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, IsSuperuser: u.IsSuperuser}
}
