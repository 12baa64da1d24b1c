package events

import (
	"context"
	"time"
)

// Publisher is the outbound message contract. helpers.RabbitPublisher
// satisfies it; services hold the interface so tests can stub it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// PostCreated is emitted after a post aggregate has been committed. The
// feed worker consumes it; delivery is best-effort and never blocks or
// fails the originating request.
type PostCreated struct {
	PostID      int64     `json:"post_id"`
	MemberID    int64     `json:"member_id"`
	Title       string    `json:"title"`
	CategoryIDs []int64   `json:"category_ids,omitempty"`
	LocationIDs []int64   `json:"location_ids,omitempty"`
	ImageIDs    []int64   `json:"image_ids,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
