package domain

// Category is static reference data used to group events.
type Category struct {
	ID          string
	Name        string
	Description string
}
