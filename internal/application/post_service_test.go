package application

import (
	"context"
	"errors"
	"testing"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/events"
)

func newPostFixture(t *testing.T) (*PostService, *fakeMemberRepo, *fakePostRepo) {
	t.Helper()
	members := newFakeMemberRepo()
	posts := newFakePostRepo()
	images := newFakeImageRepo()
	for i := 0; i < 2; i++ {
		if err := images.Create(context.Background(), &entity.Image{URL: "https://img.example.com/a.png"}); err != nil {
			t.Fatalf("seed image: %v", err)
		}
	}
	svc := &PostService{
		Members: members,
		Posts:   posts,
		Categories: &fakeCategoryRepo{categories: map[int64]entity.Category{
			1: {ID: 1, Name: "food"},
			2: {ID: 2, Name: "lodging"},
		}},
		Locations: &fakeLocationRepo{locations: map[int64]entity.Location{
			1: {ID: 1, Name: "Gyeongbokgung"},
			2: {ID: 2, Name: "Haeundae"},
		}},
		Images: images,
	}
	return svc, members, posts
}

func seedOwner(t *testing.T, members *fakeMemberRepo) *entity.Member {
	t.Helper()
	m := &entity.Member{UserID: "traveler1", Nickname: "wanderer", PasswordHash: "x"}
	if err := members.Create(context.Background(), m); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

func TestCreatePostAssemblesAggregate(t *testing.T) {
	t.Parallel()
	svc, members, posts := newPostFixture(t)
	owner := seedOwner(t, members)

	id, err := svc.CreatePost(context.Background(), owner.ID, CreatePostInput{
		Title:       "Three days in Seoul",
		Content:     "day one...",
		CategoryIDs: []int64{1, 2},
		LocationIDs: []int64{1},
		ImageIDs:    []int64{1, 2},
		Tags:        []string{"seoul", "food"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a generated post id")
	}

	p, err := posts.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.MemberID != owner.ID {
		t.Fatalf("owner mismatch: %d != %d", p.MemberID, owner.ID)
	}
	if len(p.Categories) != 2 || len(p.Locations) != 1 || len(p.Images) != 2 || len(p.Tags) != 2 {
		t.Fatalf("aggregate sizes wrong: %d/%d/%d/%d",
			len(p.Categories), len(p.Locations), len(p.Images), len(p.Tags))
	}
	for _, pc := range p.Categories {
		if pc.PostID != id {
			t.Fatalf("category association not bound to post: %+v", pc)
		}
	}
}

func TestCreatePostDropsUnresolvedIDs(t *testing.T) {
	t.Parallel()
	svc, members, posts := newPostFixture(t)
	owner := seedOwner(t, members)

	id, err := svc.CreatePost(context.Background(), owner.ID, CreatePostInput{
		Title:       "partial references",
		Content:     "body",
		CategoryIDs: []int64{1, 2, 999},
		LocationIDs: []int64{1, 888},
		ImageIDs:    []int64{1, 777},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := posts.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Categories) != 2 {
		t.Fatalf("expected 2 resolved categories, got %d", len(p.Categories))
	}
	if len(p.Locations) != 1 {
		t.Fatalf("expected 1 resolved location, got %d", len(p.Locations))
	}
	if len(p.Images) != 1 {
		t.Fatalf("expected 1 resolved image, got %d", len(p.Images))
	}
}

func TestCreatePostUnknownOwnerWritesNothing(t *testing.T) {
	t.Parallel()
	svc, _, posts := newPostFixture(t)

	_, err := svc.CreatePost(context.Background(), 12345, CreatePostInput{
		Title:   "orphan",
		Content: "body",
	})
	var unknown *UnknownUserError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownUserError, got %v", err)
	}
	if len(posts.posts) != 0 {
		t.Fatalf("no post should be persisted, found %d", len(posts.posts))
	}
}

func TestCreatePostTagsAreFreshPerPost(t *testing.T) {
	t.Parallel()
	svc, members, posts := newPostFixture(t)
	owner := seedOwner(t, members)

	ctx := context.Background()
	first, err := svc.CreatePost(ctx, owner.ID, CreatePostInput{Title: "a", Content: "x", Tags: []string{"seoul"}})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreatePost(ctx, owner.ID, CreatePostInput{Title: "b", Content: "y", Tags: []string{"seoul"}})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	p1, _ := posts.GetByID(ctx, first)
	p2, _ := posts.GetByID(ctx, second)
	if len(p1.Tags) != 1 || len(p2.Tags) != 1 {
		t.Fatalf("each post should carry its own tag row: %d/%d", len(p1.Tags), len(p2.Tags))
	}
	// Same label, distinct rows: the tag belongs to exactly one post.
	if p1.Tags[0].PostID == p2.Tags[0].PostID {
		t.Fatalf("tags must not be shared across posts: %+v %+v", p1.Tags[0], p2.Tags[0])
	}
}

func TestCreatePostPublishesEvent(t *testing.T) {
	t.Parallel()
	svc, members, _ := newPostFixture(t)
	owner := seedOwner(t, members)
	pub := &capturedPublisher{}
	svc.Events = pub

	id, err := svc.CreatePost(context.Background(), owner.ID, CreatePostInput{
		Title:       "published",
		Content:     "body",
		CategoryIDs: []int64{1},
		Tags:        []string{"seoul"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.events))
	}
	ev, ok := pub.events[0].(events.PostCreated)
	if !ok {
		t.Fatalf("unexpected event type %T", pub.events[0])
	}
	if ev.PostID != id || ev.MemberID != owner.ID || ev.Title != "published" {
		t.Fatalf("event payload wrong: %+v", ev)
	}
}

func TestCreatePostEventCarriesResolvedIDs(t *testing.T) {
	t.Parallel()
	svc, members, _ := newPostFixture(t)
	owner := seedOwner(t, members)
	pub := &capturedPublisher{}
	svc.Events = pub

	_, err := svc.CreatePost(context.Background(), owner.ID, CreatePostInput{
		Title:       "partial references",
		Content:     "body",
		CategoryIDs: []int64{1, 999},
		LocationIDs: []int64{2, 888},
		ImageIDs:    []int64{1, 777},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.events))
	}
	ev := pub.events[0].(events.PostCreated)
	// Dropped ids must not leak into the event; feeds built from it have
	// to agree with the persisted aggregate.
	if len(ev.CategoryIDs) != 1 || ev.CategoryIDs[0] != 1 {
		t.Fatalf("expected resolved category ids [1], got %v", ev.CategoryIDs)
	}
	if len(ev.LocationIDs) != 1 || ev.LocationIDs[0] != 2 {
		t.Fatalf("expected resolved location ids [2], got %v", ev.LocationIDs)
	}
	if len(ev.ImageIDs) != 1 || ev.ImageIDs[0] != 1 {
		t.Fatalf("expected resolved image ids [1], got %v", ev.ImageIDs)
	}
}

func TestGetPostNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newPostFixture(t)

	if _, err := svc.GetPost(context.Background(), 9999); err == nil {
		t.Fatal("expected an error for a missing post")
	}
}
