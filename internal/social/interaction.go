// Package social maintains the follow graph and simulates population
// reactions to player-authored content.
package social

import (
	"time"
)

// InteractionKind is one of the four social action types.
type InteractionKind string

const (
	KindLike    InteractionKind = "like"
	KindShare   InteractionKind = "share"
	KindComment InteractionKind = "comment"
	KindReply   InteractionKind = "reply"
)

// TargetKind says what an interaction is attached to.
type TargetKind string

const (
	TargetContent TargetKind = "content"
	TargetComment TargetKind = "comment"
)

// Visibility controls fan-out. Only public and followers interactions are
// delivered to followers.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityFollowers Visibility = "followers"
	VisibilityFriends   Visibility = "friends"
	VisibilityPrivate   Visibility = "private"
)

// Origin marks who authored an interaction. Echo records are never
// re-scored for responses, which caps the response chain at one level.
type Origin string

const (
	OriginPlayer  Origin = "player"
	OriginNPCEcho Origin = "npc_echo"
)

// Interaction is append-only per actor and never mutated after creation.
type Interaction struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actor_id"`
	TargetID   string          `json:"target_id"`
	TargetKind TargetKind      `json:"target_kind"`
	Kind       InteractionKind `json:"kind"`
	Text       string          `json:"text,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Visibility Visibility      `json:"visibility"`
	Origin     Origin          `json:"origin"`
}

// Content is an item served by the external content store; the engine only
// documents this shape for the personalized-feed contract.
type Content struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedSource is the external content store behind the personalized feed:
// given a profile, its following list, and a limit, it returns a
// most-recent-first content list truncated to limit.
type FeedSource interface {
	FeedFor(profileID string, following []string, limit int) ([]Content, error)
}
