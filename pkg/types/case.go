package types

import (
	"time"
)

type CaseStatus string

const (
	CaseStatusPending   CaseStatus = "pending"
	CaseStatusActive    CaseStatus = "active"
	CaseStatusCompleted CaseStatus = "completed"
	CaseStatusCancelled CaseStatus = "cancelled"
)

type CaseCategory string

const (
	CategoryMedical       CaseCategory = "medical"
	CategoryEducation     CaseCategory = "education"
	CategoryDisaster      CaseCategory = "disaster"
	CategoryAnimal        CaseCategory = "animal"
	CategoryEnvironmental CaseCategory = "environmental"
	CategoryCommunity     CaseCategory = "community"
	CategoryOther         CaseCategory = "other"
)

// SupportType discriminates what a case accepts: money, physical items, or both.
type SupportType string

const (
	SupportTypeMoney SupportType = "money"
	SupportTypeItems SupportType = "items"
	SupportTypeBoth  SupportType = "both"
)

// Case is a published hardship record soliciting support. All amounts are
// integer VND; the server owns every field, the client is a read-only consumer.
type Case struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    CaseCategory `json:"category"`
	SupportType SupportType  `json:"supportType"`

	// TargetAmount is meaningful only when SupportType is money or both.
	TargetAmount  int64        `json:"targetAmount"`
	CurrentAmount int64        `json:"currentAmount"`
	NeededItems   []NeededItem `json:"neededItems"`

	Status       CaseStatus `json:"status"`
	Featured     bool       `json:"featured"`
	EndDate      *time.Time `json:"endDate"`
	User         *User      `json:"user"`
	SupportCount int        `json:"supportCount"`
	Images       []string   `json:"images"`

	// RecentSupports is populated on detail responses only.
	RecentSupports []Support `json:"recentSupports,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NeededItem is one requested item on a case, tracked against fulfilment.
type NeededItem struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Unit             string `json:"unit"`
	Quantity         int    `json:"quantity"`
	ReceivedQuantity int    `json:"receivedQuantity"`
}

// CaseDraft is the payload for creating or updating a case.
type CaseDraft struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     CaseCategory `json:"category"`
	SupportType  SupportType  `json:"supportType"`
	TargetAmount int64        `json:"targetAmount,omitempty"`
	NeededItems  []NeededItem `json:"neededItems,omitempty"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
	Images       []string     `json:"images,omitempty"`
}

// CaseFilter narrows a case listing. Zero values are omitted from the query.
type CaseFilter struct {
	Keyword     string       `form:"keyword,omitempty"`
	Page        int          `form:"page,omitempty"`
	Category    CaseCategory `form:"category,omitempty"`
	SupportType SupportType  `form:"supportType,omitempty"`
}

// CaseList is the paginated envelope returned by the case listing endpoint.
type CaseList struct {
	Cases []Case `json:"cases"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Total int    `json:"total"`
}
