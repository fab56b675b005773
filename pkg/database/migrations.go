package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search across report goals and conclusions from
// the report history UI.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_deep_analysis_reports_goal_gin
		ON deep_analysis_reports USING gin(to_tsvector('english', goal))`)
	if err != nil {
		return fmt.Errorf("failed to create goal GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_deep_analysis_reports_conclusion_gin
		ON deep_analysis_reports USING gin(to_tsvector('english', COALESCE(final_conclusion, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_conclusion GIN index: %w", err)
	}

	return nil
}
