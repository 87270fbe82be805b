package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled service visit. AppointmentDate is
// the ISO datetime string the API emits; the console never parses it.
type Appointment struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"client_id"`
	CarID           int64  `json:"car_id"`
	ServiceID       int64  `json:"service_id"`
	EmployeeID      int64  `json:"employee_id,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}
