package entities

// Review represents a client review of a completed appointment.
// Rating is 1-5; bounds are enforced by the input widget only.
type Review struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointment_id"`
	ClientID      int64  `json:"client_id"`
	ServiceID     int64  `json:"service_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}
