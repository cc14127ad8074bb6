// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"time"

	"gorm.io/gorm"
)

// Now returns the database clock, read once per caller. The publish worker
// compares publish_at against the same timestamp it writes, so using the
// store's clock keeps the cutoff consistent with the predicate even when the
// app host drifts. Falls back to the app clock when the store cannot answer
// (e.g. the sqlite test driver has no now()).
func Now(db *gorm.DB) time.Time {
	var now time.Time
	if err := db.Raw("SELECT now()").Scan(&now).Error; err != nil || now.IsZero() {
		return time.Now().UTC()
	}
	return now.UTC()
}
