package progress

import (
	"time"
)

type DeadlineState string

const (
	NoDeadline DeadlineState = "no_deadline"
	Expired    DeadlineState = "expired"
	DueToday   DeadlineState = "due_today"
	Remaining  DeadlineState = "remaining"
)

// Days reports how a case's end date relates to now. Count is meaningful only
// in the Remaining state.
type Days struct {
	State DeadlineState
	Count int
}

// RemainingDays compares end against now at calendar-day granularity in the
// end date's location. Pure: now is always injected by the caller.
func RemainingDays(end *time.Time, now time.Time) Days {
	if end == nil {
		return Days{State: NoDeadline}
	}

	ey, em, ed := end.Date()
	endDay := time.Date(ey, em, ed, 0, 0, 0, 0, end.Location())

	ny, nm, nd := now.In(end.Location()).Date()
	nowDay := time.Date(ny, nm, nd, 0, 0, 0, 0, end.Location())

	days := int(endDay.Sub(nowDay).Hours() / 24)
	switch {
	case days < 0:
		return Days{State: Expired}
	case days == 0:
		return Days{State: DueToday}
	default:
		return Days{State: Remaining, Count: days}
	}
}
