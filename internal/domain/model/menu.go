package model

// MenuItem describes a single orderable dish. Availability is the only field
// mutated through the exposed surface.
type MenuItem struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	IsAvailable bool
	ImageURL    string
}
