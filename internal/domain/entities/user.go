package entities

// User represents the authenticated console operator
type User struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}
