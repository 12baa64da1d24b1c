package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	repo "github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/internal/events"
)

// PostService assembles and persists post aggregates: it resolves the
// referenced categories, locations and images across their stores, wraps
// categories in fresh association objects, builds tags from the raw
// strings, and hands the whole aggregate to the post repository for a
// single-transaction write.
type PostService struct {
	Members    repo.MemberRepository
	Posts      repo.PostRepository
	Categories repo.CategoryRepository
	Locations  repo.LocationRepository
	Images     repo.ImageRepository
	Events     events.Publisher
	Logger     *logrus.Logger
}

func NewPostService(members repo.MemberRepository, posts repo.PostRepository, categories repo.CategoryRepository, locations repo.LocationRepository, images repo.ImageRepository, pub events.Publisher, logger *logrus.Logger) *PostService {
	return &PostService{
		Members:    members,
		Posts:      posts,
		Categories: categories,
		Locations:  locations,
		Images:     images,
		Events:     pub,
		Logger:     logger,
	}
}

type CreatePostInput struct {
	Title       string
	Content     string
	CategoryIDs []int64
	LocationIDs []int64
	ImageIDs    []int64
	Tags        []string
}

// CreatePost builds and persists a post aggregate for the given owner and
// returns the generated post id.
//
// Reference ids that resolve to nothing are dropped from the aggregate
// rather than rejected; the batched lookups return matches only. A count
// mismatch is logged for diagnostics but does not fail the request.
// A missing owner is fatal: nothing is persisted.
func (s *PostService) CreatePost(ctx context.Context, ownerID int64, in CreatePostInput) (int64, error) {
	owner, err := s.Members.GetByID(ctx, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, &UnknownUserError{UserID: strconv.FormatInt(ownerID, 10)}
	}
	if err != nil {
		return 0, fmt.Errorf("lookup owner: %w", err)
	}

	locations, err := s.Locations.FindByIDs(ctx, in.LocationIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve locations: %w", err)
	}
	s.warnUnresolved("location", in.LocationIDs, len(locations))

	images, err := s.Images.FindByIDs(ctx, in.ImageIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve images: %w", err)
	}
	s.warnUnresolved("image", in.ImageIDs, len(images))

	categories, err := s.Categories.FindByIDs(ctx, in.CategoryIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve categories: %w", err)
	}
	s.warnUnresolved("category", in.CategoryIDs, len(categories))

	postCategories := make([]entity.PostCategory, 0, len(categories))
	for _, c := range categories {
		postCategories = append(postCategories, entity.PostCategory{Category: c})
	}

	p := &entity.Post{
		MemberID:   owner.ID,
		Title:      in.Title,
		Content:    in.Content,
		Categories: postCategories,
		Locations:  locations,
		Images:     images,
		Tags:       entity.NewTags(in.Tags),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}

	s.publishCreated(p)
	return p.ID, nil
}

// GetPost loads a persisted post aggregate.
func (s *PostService) GetPost(ctx context.Context, postID int64) (*entity.Post, error) {
	return s.Posts.GetByID(ctx, postID)
}

func (s *PostService) warnUnresolved(kind string, requested []int64, resolved int) {
	if s.Logger == nil || resolved == len(requested) {
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"kind":      kind,
		"requested": len(requested),
		"resolved":  resolved,
	}).Warn("post references dropped: ids did not resolve")
}

// publishCreated emits the event from the persisted aggregate, not the
// request: ids that failed to resolve were dropped from the post and must
// not leak into downstream feeds.
func (s *PostService) publishCreated(p *entity.Post) {
	if s.Events == nil {
		return
	}
	categoryIDs := make([]int64, 0, len(p.Categories))
	for _, pc := range p.Categories {
		categoryIDs = append(categoryIDs, pc.Category.ID)
	}
	locationIDs := make([]int64, 0, len(p.Locations))
	for _, l := range p.Locations {
		locationIDs = append(locationIDs, l.ID)
	}
	imageIDs := make([]int64, 0, len(p.Images))
	for _, img := range p.Images {
		imageIDs = append(imageIDs, img.ID)
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}
	evt := events.PostCreated{
		PostID:      p.ID,
		MemberID:    p.MemberID,
		Title:       p.Title,
		CategoryIDs: categoryIDs,
		LocationIDs: locationIDs,
		ImageIDs:    imageIDs,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(ctx, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("post.created publish failed")
	}
}
