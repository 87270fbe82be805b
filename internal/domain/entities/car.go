package entities

// CarStatus represents the status of a car
type CarStatus string

const (
	CarStatusActive   CarStatus = "active"
	CarStatusInactive CarStatus = "inactive"
	CarStatusSold     CarStatus = "sold"
)

// Car represents a client-owned vehicle. Status values follow the
// CarStatus constants by convention; the API accepts free text.
type Car struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"client_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	VIN          string `json:"vin,omitempty"`
	Color        string `json:"color,omitempty"`
	Mileage      int    `json:"mileage"`
	Status       string `json:"status,omitempty"`
}

// Label returns the human-readable form used in appointment tables.
func (c Car) Label() string {
	label := c.Make + " " + c.Model
	if c.LicensePlate != "" {
		label += " (" + c.LicensePlate + ")"
	}
	return label
}
