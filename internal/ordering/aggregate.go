package ordering

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chesters/restock-backend/internal/domain"
)

// EvaluateItem runs the projector and classifier for one item against a
// resolved delivery window. An item that has never been counted evaluates
// with a current count of 0, which reads as "definitely order", not missing
// data.
func EvaluateItem(item domain.Item, currentCount float64, window domain.DeliveryWindow) domain.OrderLine {
	projected := Project(currentCount, item.DailyUsage, window.DaysUntil)
	decision := Classify(projected, item.Threshold, item.Par(window.ParProfile), currentCount, window.DaysUntil)

	return domain.OrderLine{
		Item:           item,
		CurrentCount:   currentCount,
		ProjectedStock: projected,
		NeedsOrder:     decision.NeedsOrder,
		OrderAmount:    decision.OrderAmount,
		Tier:           decision.Tier,
	}
}

// BuildOrderList evaluates the full catalog against one delivery window and
// keeps the lines that need ordering, urgent tier first and then by item name
// under English collation. Items with malformed numeric fields are excluded
// and reported as warnings; the rest of the batch proceeds. An empty catalog
// yields an empty list, not an error.
func BuildOrderList(items []domain.Item, counts map[string]domain.LatestCount, window domain.DeliveryWindow) domain.OrderList {
	list := domain.OrderList{
		Window: window,
		Lines:  make([]domain.OrderLine, 0, len(items)),
	}

	for _, item := range items {
		if err := item.CheckNumerics(); err != nil {
			list.Warnings = append(list.Warnings, err.Error())
			continue
		}

		current := 0.0
		if latest, ok := counts[item.ID]; ok {
			current = latest.Count
		}

		line := EvaluateItem(item, current, window)
		if !line.NeedsOrder {
			continue
		}

		list.Lines = append(list.Lines, line)
	}

	collator := collate.New(language.English, collate.Loose)
	sort.SliceStable(list.Lines, func(i, j int) bool {
		a, b := list.Lines[i], list.Lines[j]
		if (a.Tier == domain.TierUrgent) != (b.Tier == domain.TierUrgent) {
			return a.Tier == domain.TierUrgent
		}
		return collator.CompareString(a.Item.Name, b.Item.Name) < 0
	})

	for _, line := range list.Lines {
		list.TotalCost += line.LineCost()
	}

	return list
}

// GroupByCategory re-partitions a sorted order list for presentation. Lines
// keep their relative order inside each group; categories with no lines are
// omitted, and lines whose category id is not in the catalog get a trailing
// group per unknown id so nothing is dropped.
func GroupByCategory(list domain.OrderList, categories []domain.Category) []domain.CategoryGroup {
	groups := make([]domain.CategoryGroup, 0, len(categories))
	known := make(map[string]bool, len(categories))

	for _, cat := range categories {
		known[cat.ID] = true

		var lines []domain.OrderLine
		for _, line := range list.Lines {
			if line.Item.Category == cat.ID {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		groups = append(groups, domain.CategoryGroup{Category: cat, Lines: lines})
	}

	var orphaned []string
	seen := make(map[string]bool)
	for _, line := range list.Lines {
		if id := line.Item.Category; !known[id] && !seen[id] {
			seen[id] = true
			orphaned = append(orphaned, id)
		}
	}

	for _, id := range orphaned {
		var lines []domain.OrderLine
		for _, line := range list.Lines {
			if line.Item.Category == id {
				lines = append(lines, line)
			}
		}
		groups = append(groups, domain.CategoryGroup{
			Category: domain.Category{ID: id, Name: id},
			Lines:    lines,
		})
	}

	return groups
}
