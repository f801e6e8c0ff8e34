package types

import (
	"time"
)

type SupportStatus string

const (
	SupportStatusPending   SupportStatus = "pending"
	SupportStatusCompleted SupportStatus = "completed"
	SupportStatusFailed    SupportStatus = "failed"
)

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentMomo     PaymentMethod = "momo"
)

// Support is a single pledge (money and/or items) toward a case. Pledged item
// quantities stay independent of the case's received quantities until the
// server approves the support.
type Support struct {
	ID        string `json:"_id"`
	CaseID    string `json:"case"`
	User      *User  `json:"user"`
	Anonymous bool   `json:"anonymous"`

	Amount int64         `json:"amount"`
	Items  []SupportItem `json:"items"`

	Message       string        `json:"message"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`

	Status        SupportStatus  `json:"status"`
	StatusHistory []StatusChange `json:"statusHistory"`
	ProofImages   []ProofImage   `json:"proofImages"`

	CreatedAt time.Time `json:"createdAt"`
}

// SupportItem is one pledged item line on a support.
type SupportItem struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// StatusChange is one entry in a support's moderation history.
type StatusChange struct {
	Status    SupportStatus `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Note      string        `json:"note"`
}

// ProofImage is evidence attached by an admin when fulfilling a support.
type ProofImage struct {
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

// SupportDraft is the payload for submitting a support to a case.
type SupportDraft struct {
	Amount        int64         `json:"amount"`
	Items         []SupportItem `json:"items,omitempty"`
	Message       string        `json:"message,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	Anonymous     bool          `json:"anonymous,omitempty"`
}

// SupportFilter narrows the admin support listing.
type SupportFilter struct {
	Status SupportStatus `form:"status,omitempty"`
	Page   int           `form:"page,omitempty"`
}

// SupportList is the paginated envelope returned by the admin support listing.
type SupportList struct {
	Supports []Support `json:"supports"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
	Total    int       `json:"total"`
}
