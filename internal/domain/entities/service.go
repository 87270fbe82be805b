package entities

// Service represents a billable shop service.
// Duration is an "HH:MM:SS" string, e.g. "01:30:00".
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CategoryID  int64   `json:"category_id,omitempty"`
	Duration    string  `json:"duration,omitempty"`
}
