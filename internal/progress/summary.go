package progress

import (
	"time"

	"tangtang/pkg/types"
)

// Summary is the aggregate view rendered on case cards and detail pages.
type ProgressSummary struct {
	MoneyPercent int
	ItemsPercent int

	// Overall folds the two tracks into one number according to the case's
	// support type; for "both" it is the mean of the two tracks.
	Overall int

	Deadline Days
}

func Summarize(c types.Case, now time.Time) ProgressSummary {
	s := ProgressSummary{
		MoneyPercent: Percent(c.CurrentAmount, c.TargetAmount),
		ItemsPercent: ItemsPercent(c.NeededItems),
		Deadline:     RemainingDays(c.EndDate, now),
	}

	switch c.SupportType {
	case types.SupportTypeMoney:
		s.Overall = s.MoneyPercent
	case types.SupportTypeItems:
		s.Overall = s.ItemsPercent
	case types.SupportTypeBoth:
		s.Overall = (s.MoneyPercent + s.ItemsPercent) / 2
	}

	return s
}
