package database

import (
	"database/sql"
	"fmt"

	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

// Migration represents a schema migration applied in order
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the full schema history. New migrations are appended,
// never edited in place.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id TEXT PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				display_name TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_reports",
		SQL: `
			CREATE TABLE IF NOT EXISTS reports (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				lake_id TEXT NOT NULL DEFAULT '',
				lake_name TEXT NOT NULL DEFAULT '',
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				category TEXT NOT NULL,
				severity TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				photo_count INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'submitted',
				cleanup_completed_by TEXT NOT NULL DEFAULT '',
				cleanup_completed_at TIMESTAMP,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_reports_user ON reports(user_id);
			CREATE INDEX IF NOT EXISTS idx_reports_status ON reports(status)
		`,
	},
	{
		Version: 3,
		Name:    "create_badges",
		SQL: `
			CREATE TABLE IF NOT EXISTS badges (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				icon TEXT NOT NULL DEFAULT ''
			);
			CREATE TABLE IF NOT EXISTS user_badges (
				user_id TEXT NOT NULL REFERENCES users(id),
				badge_id TEXT NOT NULL REFERENCES badges(id),
				earned_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (user_id, badge_id)
			)
		`,
	},
	{
		Version: 4,
		Name:    "create_points_ledger",
		SQL: `
			CREATE TABLE IF NOT EXISTS points_ledger (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT NOT NULL REFERENCES users(id),
				delta INTEGER NOT NULL,
				reason TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_points_user ON points_ledger(user_id)
		`,
	},
	{
		Version: 5,
		Name:    "create_rewards",
		SQL: `
			CREATE TABLE IF NOT EXISTS rewards (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				cost_points INTEGER NOT NULL,
				stock INTEGER NOT NULL DEFAULT 0
			);
			CREATE TABLE IF NOT EXISTS redemptions (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL REFERENCES users(id),
				reward_id TEXT NOT NULL REFERENCES rewards(id),
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 6,
		Name:    "seed_badge_catalog",
		// Badge names must match the rule table in internal/badges; a
		// catalog row with no matching rule is never granted.
		SQL: `
			INSERT OR IGNORE INTO badges (id, name, description, icon) VALUES
				('first-report', 'First Report', 'Submit your first pollution report', 'flag'),
				('5-reports', '5 Reports', 'Submit 5 pollution reports', 'clipboard'),
				('10-reports', '10 Reports', 'Submit 10 pollution reports', 'clipboard-check'),
				('eco-warrior', 'Eco Warrior', 'Submit 25 pollution reports', 'shield'),
				('lake-champion', 'Lake Champion', 'Submit 50 pollution reports', 'trophy'),
				('environmental-legend', 'Environmental Legend', 'Submit 100 pollution reports', 'star'),
				('100-points-club', '100 Points Club', 'Earn 100 points', 'coin'),
				('point-master', 'Point Master', 'Earn 500 points', 'coins'),
				('point-legend', 'Point Legend', 'Earn 1000 points', 'gem'),
				('cleanup-hero', 'Cleanup Hero', 'Complete 5 cleanups', 'broom'),
				('lake-guardian', 'Lake Guardian', 'Complete 10 cleanups', 'water'),
				('super-cleaner', 'Super Cleaner', 'Complete 10 cleanups', 'sparkles'),
				('master-cleaner', 'Master Cleaner', 'Complete 25 cleanups', 'crown'),
				('early-bird', 'Early Bird', 'Report before 8am', 'sunrise'),
				('night-owl', 'Night Owl', 'Report after 10pm', 'moon'),
				('photo-pro', 'Photo Pro', 'Attach photos to 10 reports', 'camera'),
				('detail-detective', 'Detail Detective', 'Write 10 detailed descriptions', 'magnifier'),
				('severity-expert', 'Severity Expert', 'Report across 5 severity levels', 'gauge'),
				('category-master', 'Category Master', 'Report across 6 pollution categories', 'grid')
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	log := logger.GetLogger("database")

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
		log.Infof("Applied migration %d_%s", m.Version, m.Name)
	}

	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to apply migration %d_%s: %w", m.Version, m.Name, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d_%s: %w", m.Version, m.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d_%s: %w", m.Version, m.Name, err)
	}

	return nil
}
