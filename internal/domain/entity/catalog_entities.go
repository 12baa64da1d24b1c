package entity

import (
	"time"
)

// Category is a curated topic a post can be filed under.
type Category struct {
	ID   int64
	Name string
}

// Location is a pre-created place record referenced by posts.
type Location struct {
	ID      int64
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// Image is an uploaded media record referenced by posts. URL is public;
// ObjectKey identifies the blob in the storage bucket.
type Image struct {
	ID        int64
	URL       string
	ObjectKey string
	CreatedAt time.Time
}
