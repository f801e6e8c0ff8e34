package validate

import (
	"strings"
	"time"

	"tangtang/pkg/types"
)

// Case checks a case draft before it is sent to the server. The support-type
// invariant is the important part: a money case carries a target and no item
// list, an item case the reverse, and "both" carries both.
func Case(draft types.CaseDraft, now time.Time) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fail(MissingTitle)
	}

	needsMoney := draft.SupportType == types.SupportTypeMoney || draft.SupportType == types.SupportTypeBoth
	needsItems := draft.SupportType == types.SupportTypeItems || draft.SupportType == types.SupportTypeBoth

	if needsMoney && draft.TargetAmount <= 0 {
		return fail(MissingTarget)
	}

	if needsItems && !hasRequestedItem(draft.NeededItems) {
		return fail(MissingNeededItems)
	}

	if draft.EndDate != nil && draft.EndDate.Before(now) {
		return fail(InvalidEndDate)
	}

	return nil
}

func hasRequestedItem(items []types.NeededItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Name) != "" && item.Quantity > 0 {
			return true
		}
	}
	return false
}

// Message guards a chat message before posting.
func Message(content string) error {
	if strings.TrimSpace(content) == "" {
		return fail(EmptyMessage)
	}
	return nil
}
