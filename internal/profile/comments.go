// Comment template pools keyed by role kind, used when a generated profile
// reacts to player content with a comment.
package profile

// CommentPools holds 3–4 templates per responding role. Roles without a
// pool fall back to the citizen pool.
var CommentPools = map[RoleKind][]Template{
	RoleCitizen: {
		T("This is exactly what {npcLocation} needs to hear!"),
		T("Greetings from {npcLocation}, {playerName}. Well said."),
		T("I've been following news about {topic} — great take."),
		T("We talk about this in {npcLocation} all the time."),
	},
	RolePersonality: {
		T("Sharing this with my followers across {systems} systems!"),
		T("{playerName}, you always find the best angles on {topic}."),
		T("Incredible perspective from {playerLocation}. The {region} needs more voices like this."),
	},
	RoleCityLeader: {
		T("As a representative of {npcLocation}, I welcome this discussion."),
		T("Our administration has been watching {topic} closely. Come visit {npcLocation} sometime."),
		T("{playerName} raises points my constituents care deeply about."),
	},
	RolePlanetLeader: {
		T("On behalf of {npcLocation}, I commend this contribution to {topic}."),
		T("The {region} grows stronger when {playerLocation} and {npcLocation} share ideas."),
		T("I'll be raising this with the planetary council."),
	},
	RoleDivisionLeader: {
		T("A strategically sound observation, {playerName}."),
		T("The defense of {systems} systems depends on clear thinking like this."),
		T("From the command deck at {npcLocation}: noted, and agreed."),
	},
}

// CommentTopics is the fixed list drawn for the {topic} slot.
var CommentTopics = []string{
	"interstellar trade", "frontier settlement", "fleet modernization",
	"terraforming ethics", "deep-space exploration", "cultural exchange",
}

// CommentEmojis is appended when the responder's humor exceeds 0.7.
var CommentEmojis = []string{"😄", "🚀", "✨", "🌌", "😉"}

// MilderSynonyms replaces superlatives when aggression exceeds 0.7; an
// aggressive speaker undersells rather than gushes.
var MilderSynonyms = map[string]string{
	"incredible": "decent",
	"great":      "fair",
	"best":       "better",
	"exactly":    "roughly",
	"deeply":     "somewhat",
}

// CollaborationPhrases are appended when cooperation exceeds 0.8.
var CollaborationPhrases = []string{
	" We should work together on this.",
	" My door is open if you want to collaborate.",
	" Let's build on this together.",
}
