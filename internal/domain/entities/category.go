package entities

// Category represents a flat service category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
