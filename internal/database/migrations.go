package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the search and lookup indexes AutoMigrate cannot express
// through struct tags. Postgres only; tests on sqlite skip this.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		// Case-insensitive search over the free-text columns
		{"idx_jobs_title_lower", "CREATE INDEX IF NOT EXISTS idx_jobs_title_lower ON jobs (LOWER(title))"},
		{"idx_jobs_company_lower", "CREATE INDEX IF NOT EXISTS idx_jobs_company_lower ON jobs (LOWER(company))"},
		{"idx_jobs_location_lower", "CREATE INDEX IF NOT EXISTS idx_jobs_location_lower ON jobs (LOWER(location))"},

		// Sorting and listing
		{"idx_jobs_created_at", "CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at)"},
		{"idx_jobs_applications", "CREATE INDEX IF NOT EXISTS idx_jobs_applications ON jobs (applications)"},
		{"idx_applications_created_at", "CREATE INDEX IF NOT EXISTS idx_applications_created_at ON applications (created_at)"},
		{"idx_applications_applicant_id", "CREATE INDEX IF NOT EXISTS idx_applications_applicant_id ON applications (applicant_id)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
