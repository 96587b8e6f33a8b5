package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. The seq columns preserve
// insertion order, which is semantically meaningful for roster entries and
// the directory tie-break.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    position TEXT NOT NULL,
    status TEXT NOT NULL,
    dues REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS teams (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    kit_color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS roster_entries (
    team_id TEXT NOT NULL,
    tier TEXT NOT NULL,
    seq INTEGER NOT NULL,
    name TEXT NOT NULL,
    member_id TEXT NOT NULL,
    PRIMARY KEY (team_id, tier, seq),
    FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS bookings (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    location TEXT NOT NULL,
    team_name TEXT NOT NULL,
    price REAL NOT NULL,
    status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    date TEXT NOT NULL,
    description TEXT NOT NULL,
    kind TEXT NOT NULL,
    amount REAL NOT NULL,
    responsible TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS club_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    opening_balance REAL NOT NULL,
    notes TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_roster_entries_team_id ON roster_entries(team_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
