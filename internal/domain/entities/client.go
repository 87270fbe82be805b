package entities

// Client represents a shop customer
type Client struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	ClientType string  `json:"client_type,omitempty"`
	Discount   float64 `json:"discount,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}
