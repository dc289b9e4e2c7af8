// internal/service/item_payload.go
package service

import (
	"github.com/chesters/restock-backend/internal/domain"
)

// ItemPayload is the item write request shape. Older clients still send the
// legacy camelCase keys; normalization folds them into the snake_case store
// contract at this boundary so the decision engine never sees them. A field
// present under both names resolves to the snake_case value.
type ItemPayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Supplier   string   `json:"supplier"`
	Unit       string   `json:"unit"`
	Location   string   `json:"location"`
	WeekPar    *float64 `json:"week_par"`
	WeekendPar *float64 `json:"weekend_par"`
	Threshold  *float64 `json:"threshold"`
	DailyUsage *float64 `json:"daily_usage"`
	Cost       *float64 `json:"cost"`

	LegacyWeekPar    *float64 `json:"weekPar"`
	LegacyWeekendPar *float64 `json:"weekendPar"`
	LegacyDailyUsage *float64 `json:"dailyUsage"`
}

// Normalize resolves legacy keys, applies the one documented default (absent
// cost reads as 0) and validates the result. A missing required numeric field
// is rejected, never coerced.
func (p ItemPayload) Normalize() (*domain.Item, error) {
	item := &domain.Item{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Supplier: p.Supplier,
		Unit:     p.Unit,
		Location: p.Location,
	}

	var err error
	if item.WeekPar, err = required(p.ID, "week_par", p.WeekPar, p.LegacyWeekPar); err != nil {
		return nil, err
	}
	if item.WeekendPar, err = required(p.ID, "weekend_par", p.WeekendPar, p.LegacyWeekendPar); err != nil {
		return nil, err
	}
	if item.Threshold, err = required(p.ID, "threshold", p.Threshold, nil); err != nil {
		return nil, err
	}
	if item.DailyUsage, err = required(p.ID, "daily_usage", p.DailyUsage, p.LegacyDailyUsage); err != nil {
		return nil, err
	}
	if p.Cost != nil {
		item.Cost = *p.Cost
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

func required(itemID, field string, value, legacy *float64) (float64, error) {
	if value != nil {
		return *value, nil
	}
	if legacy != nil {
		return *legacy, nil
	}

	return 0, &domain.DataQualityError{ItemID: itemID, Field: field, Reason: "is required"}
}
