// Package persistence provides the SQLite-backed outward sink: profiles,
// interactions, and follow changes mirrored as JSON rows, fire-and-forget
// from the engine's perspective.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/avens/star-society/internal/profile"
	"github.com/avens/star-society/internal/social"
)

// DB wraps a SQLite connection. It satisfies both the population and
// social sink interfaces.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		system_id TEXT NOT NULL,
		planet_id TEXT,
		city_id TEXT,
		reputation REAL NOT NULL,
		doc TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		origin TEXT NOT NULL,
		doc TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS follow_changes (
		follower_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		following INTEGER NOT NULL,
		changed_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_system ON profiles(system_id);
	CREATE INDEX IF NOT EXISTS idx_interactions_actor ON interactions(actor_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveProfile upserts one profile row with the full record as JSON.
func (db *DB) SaveProfile(p *profile.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO profiles
		(id, name, role, system_id, planet_id, city_id, reputation, doc, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(p.Role),
		p.Location.SystemID, p.Location.PlanetID, p.Location.CityID,
		p.Reputation.Overall, string(doc), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	return nil
}

// SaveInteraction appends one interaction row.
func (db *DB) SaveInteraction(rec *social.Interaction) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal interaction: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO interactions
		(id, actor_id, target_id, kind, origin, doc, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ActorID, rec.TargetID, string(rec.Kind), string(rec.Origin),
		string(doc), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save interaction %s: %w", rec.ID, err)
	}
	return nil
}

// SaveFollowChange appends one follow-change row.
func (db *DB) SaveFollowChange(followerID, targetID string, following bool) error {
	f := 0
	if following {
		f = 1
	}
	_, err := db.conn.Exec(`
		INSERT INTO follow_changes (follower_id, target_id, following, changed_at)
		VALUES (?, ?, ?, ?)`,
		followerID, targetID, f, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save follow change: %w", err)
	}
	return nil
}

// CountProfiles returns the number of mirrored profile rows.
func (db *DB) CountProfiles() (int, error) {
	var n int
	if err := db.conn.Get(&n, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
