package types

import (
	"time"
)

// Message is one chat message on a case page.
type Message struct {
	ID        string    `json:"_id"`
	CaseID    string    `json:"case"`
	User      *User     `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
