package validate

import (
	"strings"

	"tangtang/pkg/types"
)

// ItemChoice is one needed-item row as the supporter filled it in.
type ItemChoice struct {
	ItemID         string
	Selected       bool
	DonateQuantity int
}

// SupportInput is everything the support form collects before submission.
type SupportInput struct {
	SupportType   types.SupportType
	Amount        int64
	Items         []ItemChoice
	PaymentMethod types.PaymentMethod
	TransactionID string
}

// Support checks a support submission. Rules run in order and the first
// failure wins:
//
//  1. money-only cases require a positive amount
//  2. item cases require at least one selected item with a positive quantity;
//     for "both", either track satisfies the pledge
//  3. any positive amount paid by bank transfer requires a transaction id
func Support(in SupportInput) error {
	hasItems := false
	for _, item := range in.Items {
		if item.Selected && item.DonateQuantity > 0 {
			hasItems = true
			break
		}
	}

	switch in.SupportType {
	case types.SupportTypeMoney:
		if in.Amount <= 0 {
			return fail(MissingAmount)
		}
	case types.SupportTypeItems:
		if !hasItems {
			return fail(MissingItems)
		}
	case types.SupportTypeBoth:
		if in.Amount <= 0 && !hasItems {
			return fail(MissingAmount)
		}
	}

	if in.Amount > 0 && in.PaymentMethod == types.PaymentTransfer {
		if strings.TrimSpace(in.TransactionID) == "" {
			return fail(MissingTransactionID)
		}
	}

	return nil
}
