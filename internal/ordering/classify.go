package ordering

import (
	"math"

	"github.com/chesters/restock-backend/internal/domain"
)

// Classification is the reorder decision for a single item.
type Classification struct {
	NeedsOrder  bool
	OrderAmount float64
	Tier        domain.Tier
}

// Classify decides whether an item needs ordering and how urgently. A reorder
// triggers when projected stock falls below the threshold. The order amount
// restocks from the current count up to par, not merely the projected
// shortfall; par must already be the profile-appropriate value, selected by
// the caller. With at most one day until the truck a needed order is urgent.
func Classify(projectedStock, threshold, par, currentCount float64, daysUntil int) Classification {
	needsOrder := projectedStock < threshold
	if !needsOrder {
		return Classification{Tier: domain.TierGood}
	}

	tier := domain.TierOrder
	if daysUntil <= 1 {
		tier = domain.TierUrgent
	}

	return Classification{
		NeedsOrder:  true,
		OrderAmount: math.Max(0, par-currentCount),
		Tier:        tier,
	}
}
