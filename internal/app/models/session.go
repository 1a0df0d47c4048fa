package models

// Session is the redis-held login session referenced by the bearer token.
// Sessions are issued by the identity service; this service only validates
// and reads them.
type Session struct {
	SessionID   string `json:"session_id"`
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
}
