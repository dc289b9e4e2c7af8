package domain

import "strings"

// Tier is the urgency classification of a reorder evaluation.
type Tier string

const (
	TierGood   Tier = "good"
	TierOrder  Tier = "order"
	TierUrgent Tier = "urgent"
)

var tierLabels = map[Tier]string{
	TierGood:   "Good",
	TierOrder:  "Order",
	TierUrgent: "Order Now",
}

// Label returns a human-readable label for a tier.
func (t Tier) Label() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}

	return "Unknown"
}

// ParseTier returns the tier for a given name (case-insensitive).
func ParseTier(name string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(name)))
	_, ok := tierLabels[t]

	return t, ok
}
