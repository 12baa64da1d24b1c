package application

import (
	"context"
	"strings"
	"sync"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	repo "github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/internal/events"
)

// In-memory fakes for the domain repositories. They implement just enough
// behavior to exercise the services: id assignment, lookups by the unique
// fields, and batched resolution that drops unknown ids.

type fakeMemberRepo struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]*entity.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{nextID: 1, members: make(map[int64]*entity.Member)}
}

func (r *fakeMemberRepo) Create(_ context.Context, m *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id int64) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) GetByUserID(_ context.Context, userID string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.UserID == userID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeMemberRepo) GetByNickname(_ context.Context, nickname string) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.Nickname == nickname {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeMemberRepo) Update(_ context.Context, m *entity.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[m.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) SearchByNickname(_ context.Context, term string) ([]entity.MemberProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.MemberProfile, 0)
	for _, m := range r.members {
		if strings.Contains(m.Nickname, term) {
			out = append(out, entity.MemberProfile{Nickname: m.Nickname, ImageURL: m.ImageURL})
		}
	}
	return out, nil
}

type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: make(map[int64]*entity.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	for i := range p.Categories {
		p.Categories[i].PostID = p.ID
	}
	for i := range p.Tags {
		p.Tags[i].PostID = p.ID
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) FindByAuthor(_ context.Context, memberID int64) ([]entity.PostSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.PostSummary, 0)
	for _, p := range r.posts {
		if p.MemberID == memberID {
			out = append(out, entity.PostSummary{ID: p.ID, Title: p.Title, CreatedAt: p.CreatedAt})
		}
	}
	return out, nil
}

func (r *fakePostRepo) CountByAuthor(_ context.Context, memberID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.posts {
		if p.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories map[int64]entity.Category
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []int64) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

type fakeLocationRepo struct {
	locations map[int64]entity.Location
}

func (r *fakeLocationRepo) FindByIDs(_ context.Context, ids []int64) ([]entity.Location, error) {
	out := make([]entity.Location, 0, len(ids))
	for _, id := range ids {
		if l, ok := r.locations[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	nextID int64
	images map[int64]entity.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{nextID: 1, images: make(map[int64]entity.Image)}
}

func (r *fakeImageRepo) Create(_ context.Context, img *entity.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	img.ID = r.nextID
	r.nextID++
	r.images[img.ID] = *img
	return nil
}

func (r *fakeImageRepo) FindByIDs(_ context.Context, ids []int64) ([]entity.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Image, 0, len(ids))
	for _, id := range ids {
		if img, ok := r.images[id]; ok {
			out = append(out, img)
		}
	}
	return out, nil
}

type fakeInteractionRepo struct {
	scraps []entity.ScrapSummary
}

func (r *fakeInteractionRepo) CountScrapsByMember(_ context.Context, _ int64) (int, error) {
	return len(r.scraps), nil
}

func (r *fakeInteractionRepo) FindScrapsByMember(_ context.Context, _ int64) ([]entity.ScrapSummary, error) {
	return append([]entity.ScrapSummary(nil), r.scraps...), nil
}

type fakeCommentRepo struct {
	comments []entity.Comment
}

func (r *fakeCommentRepo) FindByMember(_ context.Context, memberID int64) ([]entity.Comment, error) {
	out := make([]entity.Comment, 0)
	for _, c := range r.comments {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeHasher keeps hashes readable so tests can assert on them.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(plain, digest string) bool { return digest == "hashed:"+plain }

type capturedPublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *capturedPublisher) PublishJSON(_ context.Context, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, v)
	return nil
}

var (
	_ repo.MemberRepository      = (*fakeMemberRepo)(nil)
	_ repo.PostRepository        = (*fakePostRepo)(nil)
	_ repo.CategoryRepository    = (*fakeCategoryRepo)(nil)
	_ repo.LocationRepository    = (*fakeLocationRepo)(nil)
	_ repo.ImageRepository       = (*fakeImageRepo)(nil)
	_ repo.InteractionRepository = (*fakeInteractionRepo)(nil)
	_ repo.CommentRepository     = (*fakeCommentRepo)(nil)
	_ events.Publisher           = (*capturedPublisher)(nil)
)
