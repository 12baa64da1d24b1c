package entity

import (
	"time"
)

// InteractionKind distinguishes the ways a member can engage with a post.
type InteractionKind int16

const (
	InteractionScrap InteractionKind = iota
	InteractionLike
)

// Interaction records a member's engagement with a post. The identity and
// post services only ever read these.
type Interaction struct {
	ID        int64
	PostID    int64
	MemberID  int64
	Kind      InteractionKind
	CreatedAt time.Time
}

// Comment is a member's comment on a post; consumed read-only here.
type Comment struct {
	ID        int64
	PostID    int64
	MemberID  int64
	Content   string
	CreatedAt time.Time
}

// ScrapSummary is the listing projection for a member's scrapped posts.
type ScrapSummary struct {
	PostID    int64
	Title     string
	CreatedAt time.Time
}
