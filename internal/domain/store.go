package domain

// Store represents a shop that employs staff
type Store struct {
	ID   int64
	Name string
}
