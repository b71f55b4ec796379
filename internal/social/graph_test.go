package social

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avens/star-society/internal/geo"
	"github.com/avens/star-society/internal/profile"
)

// stubDir is a fixed profile directory for graph tests.
type stubDir struct {
	order []*profile.Profile
	byID  map[string]*profile.Profile
}

func newStubDir(profiles ...*profile.Profile) *stubDir {
	d := &stubDir{byID: make(map[string]*profile.Profile)}
	for _, p := range profiles {
		d.order = append(d.order, p)
		d.byID[p.ID] = p
	}
	return d
}

func (d *stubDir) GetAll() []*profile.Profile { return d.order }
func (d *stubDir) GetByID(id string) (*profile.Profile, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// captureSink records sink traffic.
type captureSink struct {
	interactions []*Interaction
	follows      int
}

func (c *captureSink) SaveInteraction(rec *Interaction) error {
	c.interactions = append(c.interactions, rec)
	return nil
}

func (c *captureSink) SaveFollowChange(followerID, targetID string, following bool) error {
	c.follows++
	return nil
}

func (c *captureSink) echoes() int {
	n := 0
	for _, rec := range c.interactions {
		if rec.Origin == OriginNPCEcho {
			n++
		}
	}
	return n
}

func makeProfile(id, system string, role profile.RoleKind) *profile.Profile {
	return &profile.Profile{
		ID:   id,
		Name: "P " + id,
		Role: role,
		Location: profile.Location{
			SystemID:    system,
			SystemName:  system,
			PlanetID:    system + "-1",
			PlanetName:  system + " One",
			Coordinates: &geo.Coord{},
		},
		Reputation: profile.Reputation{
			Overall: 50, Military: 50, Economic: 50,
			Diplomatic: 50, Scientific: 50, Cultural: 50,
		},
		Traits: &profile.PersonalityTraits{
			Humor: 0.5, Aggression: 0.5, Cooperation: 0.5,
			Ambition: 0.5, Curiosity: 0.5,
		},
	}
}

func TestFollowToggle(t *testing.T) {
	a := makeProfile("a", "sol", profile.RolePlayer)
	b := makeProfile("b", "sol", profile.RoleCitizen)
	g := NewGraph(newStubDir(b), 1)
	g.RegisterProfile(a)

	g.Follow("a", "b", false)
	assert.True(t, g.IsFollowing("a", "b"))
	assert.Equal(t, 1, g.FollowerCount("b"))
	assert.Equal(t, 1, b.Stats.Followers)
	assert.Equal(t, 1, a.Stats.Following)

	g.Follow("a", "b", true)
	assert.False(t, g.IsFollowing("a", "b"))
	assert.Equal(t, 0, g.FollowerCount("b"))
	assert.Equal(t, 0, b.Stats.Followers)
	assert.Equal(t, 0, a.Stats.Following)
}

func TestFollowCountersMatchEdgeSets(t *testing.T) {
	b := makeProfile("b", "sol", profile.RoleCitizen)
	c := makeProfile("c", "sol", profile.RoleCitizen)
	a := makeProfile("a", "sol", profile.RolePlayer)
	g := NewGraph(newStubDir(b, c), 1)
	g.RegisterProfile(a)

	g.Follow("a", "b", false)
	g.Follow("a", "c", false)
	assert.Equal(t, 2, a.Stats.Following)
	assert.Equal(t, 1, g.FollowerCount("b"))
	assert.Equal(t, 1, g.FollowerCount("c"))
	assert.ElementsMatch(t, []string{"b", "c"}, g.Following("a"))
}

func TestSubmitInteractionAppendsHistory(t *testing.T) {
	a := makeProfile("a", "sol", profile.RolePlayer)
	g := NewGraph(newStubDir(), 1)
	g.RegisterProfile(a)

	rec := &Interaction{
		ActorID:    "a",
		TargetID:   "content-1",
		TargetKind: TargetContent,
		Kind:       KindLike,
		Visibility: VisibilityPrivate,
	}
	g.SubmitInteraction(rec)

	history := g.History("a")
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ID)
	assert.False(t, history[0].CreatedAt.IsZero())
	assert.Equal(t, OriginPlayer, history[0].Origin)
}

func TestPrivateInteractionSkipsFanOut(t *testing.T) {
	a := makeProfile("a", "sol", profile.RolePlayer)
	b := makeProfile("b", "sol", profile.RoleCitizen)

	delivered := 0
	g := NewGraph(newStubDir(b), 1, WithNotifier(func(followerID string, rec *Interaction) error {
		delivered++
		return nil
	}))
	g.RegisterProfile(a)
	g.Follow("b", "a", false) // b follows a

	g.SubmitInteraction(&Interaction{
		ActorID: "a", TargetID: "content-1", TargetKind: TargetContent,
		Kind: KindComment, Visibility: VisibilityPrivate,
	})
	assert.Zero(t, delivered, "private interactions never fan out")

	g.SubmitInteraction(&Interaction{
		ActorID: "a", TargetID: "content-2", TargetKind: TargetContent,
		Kind: KindComment, Visibility: VisibilityPublic,
	})
	assert.GreaterOrEqual(t, delivered, 1, "public interactions reach followers")
}

func TestFanOutFailureDoesNotAbort(t *testing.T) {
	a := makeProfile("a", "sol", profile.RolePlayer)
	followers := []*profile.Profile{
		makeProfile("f1", "sol", profile.RoleCitizen),
		makeProfile("f2", "sol", profile.RoleCitizen),
		makeProfile("f3", "sol", profile.RoleCitizen),
	}

	attempted := 0
	g := NewGraph(newStubDir(followers...), 1, WithNotifier(func(followerID string, rec *Interaction) error {
		attempted++
		return errors.New("network down")
	}))
	g.RegisterProfile(a)
	for _, f := range followers {
		g.Follow(f.ID, "a", false)
	}

	g.SubmitInteraction(&Interaction{
		ActorID: "a", TargetID: "content-1", TargetKind: TargetContent,
		Kind: KindLike, Visibility: VisibilityPublic,
	})
	assert.Equal(t, 3, attempted, "every follower is attempted despite failures")
}

func TestNPCEchoNeverRecurses(t *testing.T) {
	npc := makeProfile("npc", "sol", profile.RoleCitizen)
	others := []*profile.Profile{npc}
	for i := 0; i < 10; i++ {
		others = append(others, makeProfile(string(rune('p'+i)), "sol", profile.RolePersonality))
	}

	sink := &captureSink{}
	g := NewGraph(newStubDir(others...), 1, WithSink(sink))

	g.SubmitInteraction(&Interaction{
		ActorID: "npc", TargetID: "content-1", TargetKind: TargetContent,
		Kind: KindComment, Visibility: VisibilityPublic,
		Origin: OriginNPCEcho,
	})

	// The submitted echo is stored, but it is never re-scored: no further
	// interactions appear no matter how receptive the population is.
	require.Len(t, sink.interactions, 1)
	assert.Equal(t, 1, sink.echoes())
}

func TestPersonalizedFeedUsesFollowingSet(t *testing.T) {
	a := makeProfile("a", "sol", profile.RolePlayer)
	b := makeProfile("b", "sol", profile.RoleCitizen)

	var gotFollowing []string
	g := NewGraph(newStubDir(b), 1, WithFeedSource(feedFunc(func(profileID string, following []string, limit int) ([]Content, error) {
		gotFollowing = following
		return []Content{{ID: "c1"}}, nil
	})))
	g.RegisterProfile(a)
	g.Follow("a", "b", false)

	out, err := g.PersonalizedFeed("a", 10)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, []string{"b"}, gotFollowing)
}

// feedFunc adapts a function to FeedSource.
type feedFunc func(profileID string, following []string, limit int) ([]Content, error)

func (f feedFunc) FeedFor(profileID string, following []string, limit int) ([]Content, error) {
	return f(profileID, following, limit)
}
