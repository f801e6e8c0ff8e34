package progress

import (
	"math"

	"tangtang/pkg/types"
)

// Percent returns how far current is toward target as a whole percentage,
// clamped to [0, 100]. A missing or zero target always yields 0.
func Percent(current, target int64) int {
	if target <= 0 || current <= 0 {
		return 0
	}

	pct := int(math.Round(float64(current) / float64(target) * 100))
	if pct > 100 {
		return 100
	}

	return pct
}

// ItemPercent is Percent at single-item granularity.
func ItemPercent(item types.NeededItem) int {
	return Percent(int64(item.ReceivedQuantity), int64(item.Quantity))
}

// ItemsPercent aggregates fulfilment across all needed items. Summing before
// dividing keeps the result independent of item order.
func ItemsPercent(items []types.NeededItem) int {
	var received, needed int64
	for _, item := range items {
		if item.Quantity > 0 {
			needed += int64(item.Quantity)
		}
		if item.ReceivedQuantity > 0 {
			received += int64(item.ReceivedQuantity)
		}
	}

	return Percent(received, needed)
}
