// internal/domain/models.go
package domain

import "time"

// Category is a named item grouping, used for display and filtering only.
type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Supplier is a vendor contact record. It plays no part in reorder decisions.
type Supplier struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Contact string `json:"contact" db:"contact"`
	Phone   string `json:"phone" db:"phone"`
}

// Item is a trackable stock unit. The snake_case field names are the stable
// store contract; WeekPar and WeekendPar are the target quantities for the two
// delivery profiles, Threshold is the projected-stock floor that triggers a
// reorder, and DailyUsage is the expected consumption per day.
type Item struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Category   string    `json:"category" db:"category"`
	Supplier   string    `json:"supplier" db:"supplier"`
	Unit       string    `json:"unit" db:"unit"`
	Location   string    `json:"location" db:"location"`
	WeekPar    float64   `json:"week_par" db:"week_par"`
	WeekendPar float64   `json:"weekend_par" db:"weekend_par"`
	Threshold  float64   `json:"threshold" db:"threshold"`
	DailyUsage float64   `json:"daily_usage" db:"daily_usage"`
	Cost       float64   `json:"cost" db:"cost"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Par returns the target stock quantity for the given delivery profile.
func (i Item) Par(profile Profile) float64 {
	if profile == ProfileWeekend {
		return i.WeekendPar
	}
	return i.WeekPar
}

// Count is a single immutable inventory observation. Counts are append-only;
// the current quantity for an item is its most recent count by CountedAt.
type Count struct {
	ID        int64     `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	Count     float64   `json:"count" db:"count"`
	CountedAt time.Time `json:"counted_at" db:"counted_at"`
	CountedBy string    `json:"counted_by" db:"counted_by"`
}

// CountEntry is one item's quantity in a batch count submission.
type CountEntry struct {
	ItemID string  `json:"item_id"`
	Count  float64 `json:"count"`
}

// LatestCount is the most recent observation for an item.
type LatestCount struct {
	ItemID    string    `json:"item_id" db:"item_id"`
	Count     float64   `json:"count" db:"count"`
	CountedAt time.Time `json:"counted_at" db:"counted_at"`
}

// CountHistoryEntry is a past observation joined with item display fields.
type CountHistoryEntry struct {
	ID        int64     `json:"id" db:"id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Category  string    `json:"category" db:"category"`
	Unit      string    `json:"unit" db:"unit"`
	Count     float64   `json:"count" db:"count"`
	CountedAt time.Time `json:"counted_at" db:"counted_at"`
	CountedBy string    `json:"counted_by" db:"counted_by"`
}

// Profile selects which par level governs an ordering cycle.
type Profile string

const (
	ProfileWeekday Profile = "weekday"
	ProfileWeekend Profile = "weekend"
)

// DeliveryWindow is the resolved next truck day. It is computed fresh from the
// current date on every evaluation and never persisted.
type DeliveryWindow struct {
	Day        time.Weekday `json:"-"`
	DayLabel   string       `json:"day"`
	IsToday    bool         `json:"is_today"`
	DaysUntil  int          `json:"days_until"`
	ParProfile Profile      `json:"par_profile"`
}

// OrderLine is the reorder evaluation of a single item against a delivery
// window.
type OrderLine struct {
	Item           Item    `json:"item"`
	CurrentCount   float64 `json:"current_count"`
	ProjectedStock float64 `json:"projected_stock"`
	NeedsOrder     bool    `json:"needs_order"`
	OrderAmount    float64 `json:"order_amount"`
	Tier           Tier    `json:"tier"`
}

// LineCost is the estimated cost of the line, 0 when the item has no cost.
func (l OrderLine) LineCost() float64 {
	return l.OrderAmount * l.Item.Cost
}

// OrderList is the aggregated reorder recommendation for one delivery window.
// Warnings carries per-item data-quality rejections; a warning never fails the
// batch.
type OrderList struct {
	Window    DeliveryWindow `json:"window"`
	Lines     []OrderLine    `json:"lines"`
	TotalCost float64        `json:"total_cost"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// CategoryGroup is a presentation re-partition of an order list. Lines keep
// the order they had in the flat list.
type CategoryGroup struct {
	Category Category    `json:"category"`
	Lines    []OrderLine `json:"lines"`
}
