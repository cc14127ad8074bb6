// file: internals/seeds/runner.go
package seeds

import (
	topics "katalogku_backend/internals/seeds/topics"
	users "katalogku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds is invoked once at startup when RUN_SEEDS=true. Every seeder
// skips rows that already exist, so re-running is safe.
func RunAllSeeds(db *gorm.DB) {
	//* Topics
	topics.SeedTopicsFromJSON(db, "internals/seeds/topics/data_topics.json")

	//* Users
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
