package database

// A Migration is one irreversible schema step. Steps are append-only: a
// shipped version number is the permanent identity used for the
// "already applied" check, so existing entries must never be edited.
type Migration struct {
	Version int
	Name    string
	Up      []string
	Down    []string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up: []string{
			`CREATE TABLE IF NOT EXISTS preferences (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				taste_preference TEXT NOT NULL DEFAULT 'balanced',
				allergies TEXT NOT NULL DEFAULT '[]',
				avoid_ingredients TEXT NOT NULL DEFAULT '[]',
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS budgets (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				month TEXT NOT NULL UNIQUE,
				total_budget INTEGER NOT NULL,
				daily_budget INTEGER NOT NULL,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS meal_plans (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				meal_type TEXT NOT NULL,
				menu_name TEXT NOT NULL,
				ingredients TEXT NOT NULL,
				recipe TEXT NOT NULL,
				nutrition TEXT NOT NULL,
				cooking_time INTEGER,
				estimated_cost INTEGER,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(date, meal_type)
			)`,
			`CREATE TABLE IF NOT EXISTS meal_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				meal_type TEXT NOT NULL,
				menu_name TEXT NOT NULL,
				actual_cost INTEGER,
				notes TEXT,
				executed_at TEXT DEFAULT CURRENT_TIMESTAMP,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(date, meal_type)
			)`,
			`CREATE TABLE IF NOT EXISTS expenses (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				date TEXT NOT NULL,
				amount INTEGER NOT NULL,
				category TEXT,
				description TEXT,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS ai_usage (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				action_type TEXT NOT NULL,
				prompt_tokens INTEGER DEFAULT 0,
				completion_tokens INTEGER DEFAULT 0,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS ai_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				action_type TEXT NOT NULL,
				input_data TEXT,
				output_data TEXT,
				status TEXT DEFAULT 'success',
				error_message TEXT,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS premium_status (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				is_premium INTEGER NOT NULL DEFAULT 0,
				subscription_id TEXT,
				expires_at TEXT,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS auth (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				is_logged_in INTEGER NOT NULL DEFAULT 0,
				user_id TEXT,
				email TEXT,
				access_token TEXT,
				refresh_token TEXT,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS backup_settings (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				auto_backup INTEGER NOT NULL DEFAULT 0,
				last_backup_at TEXT,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		Down: []string{
			`DROP TABLE IF EXISTS backup_settings`,
			`DROP TABLE IF EXISTS auth`,
			`DROP TABLE IF EXISTS premium_status`,
			`DROP TABLE IF EXISTS ai_history`,
			`DROP TABLE IF EXISTS ai_usage`,
			`DROP TABLE IF EXISTS expenses`,
			`DROP TABLE IF EXISTS meal_logs`,
			`DROP TABLE IF EXISTS meal_plans`,
			`DROP TABLE IF EXISTS budgets`,
			`DROP TABLE IF EXISTS preferences`,
		},
	},
	{
		// Budgets were originally keyed by month, but the app only ever
		// maintained one. Collapse to a singleton row, keeping the most
		// recently created month's amounts.
		Version: 2,
		Name:    "singleton_budget",
		Up: []string{
			`CREATE TABLE budgets_singleton (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				total_budget INTEGER NOT NULL,
				daily_budget INTEGER NOT NULL,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`INSERT INTO budgets_singleton (id, total_budget, daily_budget, created_at, updated_at)
				SELECT 1, total_budget, daily_budget, created_at, updated_at
				FROM budgets ORDER BY month DESC LIMIT 1`,
			`DROP TABLE budgets`,
			`ALTER TABLE budgets_singleton RENAME TO budgets`,
		},
		Down: []string{
			`CREATE TABLE budgets_by_month (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				month TEXT NOT NULL UNIQUE,
				total_budget INTEGER NOT NULL,
				daily_budget INTEGER NOT NULL,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
			`INSERT INTO budgets_by_month (month, total_budget, daily_budget, created_at, updated_at)
				SELECT strftime('%Y-%m', 'now'), total_budget, daily_budget, created_at, updated_at
				FROM budgets WHERE id = 1`,
			`DROP TABLE budgets`,
			`ALTER TABLE budgets_by_month RENAME TO budgets`,
		},
	},
	{
		Version: 3,
		Name:    "meal_times",
		Up: []string{
			`CREATE TABLE IF NOT EXISTS meal_times (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				meal_type TEXT NOT NULL UNIQUE,
				hour INTEGER NOT NULL,
				minute INTEGER NOT NULL,
				enabled INTEGER NOT NULL DEFAULT 1,
				created_at TEXT DEFAULT CURRENT_TIMESTAMP,
				updated_at TEXT DEFAULT CURRENT_TIMESTAMP
			)`,
		},
		Down: []string{
			`DROP TABLE IF EXISTS meal_times`,
		},
	},
}

// Migrations returns the full ordered migration list.
func Migrations() []Migration {
	return migrations
}
