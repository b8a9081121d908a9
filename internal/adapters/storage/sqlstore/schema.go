package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Las FKs llevan ON DELETE CASCADE como respaldo; los repos igual borran
// explícitamente los hijos dentro de la transacción.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		phone       TEXT NOT NULL,
		segment     TEXT NOT NULL,
		risk_level  TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id      INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		contract_type    TEXT NOT NULL,
		status           TEXT NOT NULL,
		effective_date   TIMESTAMP NOT NULL,
		expiration_date  TIMESTAMP,
		terms_ref        TEXT,
		attachments_ref  TEXT,
		created_by       TEXT NOT NULL,
		updated_by       TEXT NOT NULL,
		last_action_at   TIMESTAMP,
		created_at       TIMESTAMP NOT NULL,
		updated_at       TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer ON contracts(customer_id)`,
	`CREATE TABLE IF NOT EXISTS actions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		contract_id  INTEGER NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		action_type  TEXT NOT NULL,
		action_note  TEXT,
		acted_by     TEXT NOT NULL CHECK (acted_by <> ''),
		acted_at     TIMESTAMP NOT NULL,
		prior_status TEXT NOT NULL,
		new_status   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_actions_contract ON actions(contract_id, acted_at)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		contract_id  INTEGER NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		body         TEXT NOT NULL,
		parent_id    INTEGER REFERENCES notes(id) ON DELETE CASCADE,
		created_by   TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL,
		edited_at    TIMESTAMP,
		edit_note    TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_contract ON notes(contract_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_parent ON notes(parent_id)`,
	`CREATE TABLE IF NOT EXISTS events (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id     INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		event_type      TEXT NOT NULL,
		ts              TIMESTAMP NOT NULL,
		channel         TEXT NOT NULL,
		ip_address      TEXT,
		user_agent      TEXT,
		metadata_json   TEXT,
		correlation_id  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_customer_ts ON events(customer_id, ts)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		phone       TEXT NOT NULL,
		segment     TEXT NOT NULL,
		risk_level  TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id               BIGSERIAL PRIMARY KEY,
		customer_id      BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		contract_type    TEXT NOT NULL,
		status           TEXT NOT NULL,
		effective_date   TIMESTAMPTZ NOT NULL,
		expiration_date  TIMESTAMPTZ,
		terms_ref        TEXT,
		attachments_ref  TEXT,
		created_by       TEXT NOT NULL,
		updated_by       TEXT NOT NULL,
		last_action_at   TIMESTAMPTZ,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer ON contracts(customer_id)`,
	`CREATE TABLE IF NOT EXISTS actions (
		id           BIGSERIAL PRIMARY KEY,
		contract_id  BIGINT NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		action_type  TEXT NOT NULL,
		action_note  TEXT,
		acted_by     TEXT NOT NULL CHECK (acted_by <> ''),
		acted_at     TIMESTAMPTZ NOT NULL,
		prior_status TEXT NOT NULL,
		new_status   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_actions_contract ON actions(contract_id, acted_at)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id           BIGSERIAL PRIMARY KEY,
		contract_id  BIGINT NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		body         TEXT NOT NULL,
		parent_id    BIGINT REFERENCES notes(id) ON DELETE CASCADE,
		created_by   TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		edited_at    TIMESTAMPTZ,
		edit_note    TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_contract ON notes(contract_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_parent ON notes(parent_id)`,
	`CREATE TABLE IF NOT EXISTS events (
		id              BIGSERIAL PRIMARY KEY,
		customer_id     BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		event_type      TEXT NOT NULL,
		ts              TIMESTAMPTZ NOT NULL,
		channel         TEXT NOT NULL,
		ip_address      TEXT,
		user_agent      TEXT,
		metadata_json   JSONB,
		correlation_id  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_customer_ts ON events(customer_id, ts)`,
}

// Migrate aplica el schema del dialecto. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	var stmts []string
	switch d {
	case Postgres:
		stmts = postgresSchema
	case SQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("sqlstore: unknown dialect %v", d)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: apply schema (%s): %w", d, err)
		}
	}
	return nil
}
