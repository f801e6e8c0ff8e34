package types

// User is the platform user reference embedded in cases, supports and messages.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}
