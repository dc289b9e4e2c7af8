package domain

import "math"

type numericField struct {
	name  string
	value float64
}

func (i Item) numericFields() []numericField {
	return []numericField{
		{"week_par", i.WeekPar},
		{"weekend_par", i.WeekendPar},
		{"threshold", i.Threshold},
		{"daily_usage", i.DailyUsage},
		{"cost", i.Cost},
	}
}

// Validate checks the write-time invariants of an item: name and category are
// required, and every numeric field must be a finite, non-negative number. A
// violation is reported as a DataQualityError; values are never coerced.
func (i Item) Validate() error {
	if i.Name == "" {
		return &DataQualityError{ItemID: i.ID, Field: "name", Reason: "is required"}
	}
	if i.Category == "" {
		return &DataQualityError{ItemID: i.ID, Field: "category", Reason: "is required"}
	}

	return i.CheckNumerics()
}

// CheckNumerics verifies the finite/non-negative invariant on every numeric
// field. The aggregator uses it to exclude malformed records per item while
// the rest of the batch continues.
func (i Item) CheckNumerics() error {
	for _, f := range i.numericFields() {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			return &DataQualityError{ItemID: i.ID, Field: f.name, Reason: "is not a finite number"}
		case f.value < 0:
			return &DataQualityError{ItemID: i.ID, Field: f.name, Reason: "is negative"}
		}
	}

	return nil
}
