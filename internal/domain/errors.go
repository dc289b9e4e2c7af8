package domain

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable wraps failures reaching the persistent store. The
// decision engine cannot run without a snapshot; callers surface it as-is
// instead of retrying.
var ErrStoreUnavailable = errors.New("inventory store unavailable")

// ErrItemNotFound is returned when an item id has no record.
var ErrItemNotFound = errors.New("item not found")

// DataQualityError reports an item record with a missing, non-numeric or
// negative required field. It rejects the record at write time and excludes it
// from aggregation, never the whole batch.
type DataQualityError struct {
	ItemID string
	Field  string
	Reason string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("item %s: field %s %s", e.ItemID, e.Field, e.Reason)
}
