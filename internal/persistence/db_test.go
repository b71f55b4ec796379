package persistence

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avens/star-society/internal/profile"
	"github.com/avens/star-society/internal/social"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "society.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveProfileRoundTrip(t *testing.T) {
	db := openTestDB(t)

	p := &profile.Profile{
		ID:   "npc-1",
		Name: "Captain Vex Tarn",
		Role: profile.RoleCitizen,
		Location: profile.Location{
			SystemID: "sol", SystemName: "Sol",
			PlanetID: "earth", PlanetName: "Earth",
		},
		Reputation: profile.Reputation{Overall: 62, Military: 70},
		Profession: "Cargo Pilot",
	}
	require.NoError(t, db.SaveProfile(p))

	var row struct {
		Name       string  `db:"name"`
		Role       string  `db:"role"`
		SystemID   string  `db:"system_id"`
		Reputation float64 `db:"reputation"`
		Doc        string  `db:"doc"`
	}
	require.NoError(t, db.conn.Get(&row,
		`SELECT name, role, system_id, reputation, doc FROM profiles WHERE id = ?`, "npc-1"))

	assert.Equal(t, "Captain Vex Tarn", row.Name)
	assert.Equal(t, "citizen", row.Role)
	assert.Equal(t, "sol", row.SystemID)
	assert.InDelta(t, 62, row.Reputation, 1e-9)

	var decoded profile.Profile
	require.NoError(t, json.Unmarshal([]byte(row.Doc), &decoded))
	assert.Equal(t, p.Profession, decoded.Profession)
	assert.Equal(t, p.Reputation.Military, decoded.Reputation.Military)
}

func TestSaveProfileUpsert(t *testing.T) {
	db := openTestDB(t)

	p := &profile.Profile{ID: "npc-1", Name: "Before", Role: profile.RoleCitizen}
	require.NoError(t, db.SaveProfile(p))
	p.Name = "After"
	require.NoError(t, db.SaveProfile(p))

	n, err := db.CountProfiles()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var name string
	require.NoError(t, db.conn.Get(&name, `SELECT name FROM profiles WHERE id = ?`, "npc-1"))
	assert.Equal(t, "After", name)
}

func TestSaveInteractionRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := &social.Interaction{
		ID:         "int-1",
		ActorID:    "npc-1",
		TargetID:   "content-1",
		TargetKind: social.TargetContent,
		Kind:       social.KindComment,
		Text:       "Impressive work out there.",
		Visibility: social.VisibilityPublic,
		Origin:     social.OriginNPCEcho,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, db.SaveInteraction(rec))

	var row struct {
		ActorID string `db:"actor_id"`
		Kind    string `db:"kind"`
		Origin  string `db:"origin"`
		Doc     string `db:"doc"`
	}
	require.NoError(t, db.conn.Get(&row,
		`SELECT actor_id, kind, origin, doc FROM interactions WHERE id = ?`, "int-1"))
	assert.Equal(t, "npc-1", row.ActorID)
	assert.Equal(t, "comment", row.Kind)
	assert.Equal(t, "npc_echo", row.Origin)

	var decoded social.Interaction
	require.NoError(t, json.Unmarshal([]byte(row.Doc), &decoded))
	assert.Equal(t, rec.Text, decoded.Text)
	assert.Equal(t, rec.Visibility, decoded.Visibility)
}

func TestSaveFollowChange(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveFollowChange("a", "b", true))
	require.NoError(t, db.SaveFollowChange("a", "b", false))

	var rows []struct {
		FollowerID string `db:"follower_id"`
		Following  int    `db:"following"`
	}
	require.NoError(t, db.conn.Select(&rows,
		`SELECT follower_id, following FROM follow_changes ORDER BY rowid`))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Following)
	assert.Equal(t, 0, rows[1].Following)
}

func TestCountProfilesEmpty(t *testing.T) {
	db := openTestDB(t)

	n, err := db.CountProfiles()
	require.NoError(t, err)
	assert.Zero(t, n)
}
