// Package validate holds the pre-submit form guards. These mirror rules the
// server also enforces; a passing result here is a UX nicety, never an
// authorization.
package validate

import (
	"errors"
	"fmt"
)

// Reason is a stable machine-readable code so callers can render localized
// messages without matching on error strings.
type Reason string

const (
	MissingAmount        Reason = "MISSING_AMOUNT"
	MissingItems         Reason = "MISSING_ITEMS"
	MissingTransactionID Reason = "MISSING_TRANSACTION_ID"

	MissingTitle       Reason = "MISSING_TITLE"
	MissingTarget      Reason = "MISSING_TARGET"
	MissingNeededItems Reason = "MISSING_NEEDED_ITEMS"
	InvalidEndDate     Reason = "INVALID_END_DATE"

	EmptyMessage Reason = "EMPTY_MESSAGE"
)

// RuleError is a single failed validation rule. Validation is fail-fast, so a
// caller sees at most one per check.
type RuleError struct {
	Reason Reason
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func fail(reason Reason) error {
	return &RuleError{Reason: reason}
}

// ReasonOf extracts the rule code from an error, or "" when the error did not
// come from this package.
func ReasonOf(err error) Reason {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason
	}
	return ""
}
