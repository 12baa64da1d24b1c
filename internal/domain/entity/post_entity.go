package entity

import (
	"time"
)

// Post is the aggregate root for published trip content. The association
// slices are attached at creation time and persisted together with the post
// in a single transaction.
type Post struct {
	ID         int64
	MemberID   int64
	Title      string
	Content    string
	Categories []PostCategory
	Locations  []Location
	Images     []Image
	Tags       []Tag
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PostCategory links a post to a category. Each post gets its own fresh
// association rows; they are never shared between posts.
type PostCategory struct {
	ID       int64
	PostID   int64
	Category Category
}

// Tag is a free-text label owned by exactly one post. Tags are constructed
// from the raw request strings as-is: no lookup, no dedup.
type Tag struct {
	ID     int64
	PostID int64
	Name   string
}

// NewTags builds fresh tag values for a post from raw strings.
func NewTags(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		tags = append(tags, Tag{Name: n})
	}
	return tags
}

// PostSummary is the listing projection used for a member's own posts.
type PostSummary struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}
