package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tripmoa/trip-backend/internal/application"
	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
)

// stubMemberRepo returns a fixed member or error; enough to drive the
// handler status mapping.
type stubMemberRepo struct {
	member *entity.Member
	err    error
}

func (r *stubMemberRepo) Create(context.Context, *entity.Member) error { return r.err }

func (r *stubMemberRepo) GetByID(context.Context, int64) (*entity.Member, error) {
	return r.member, r.err
}

func (r *stubMemberRepo) GetByUserID(context.Context, string) (*entity.Member, error) {
	return r.member, r.err
}

func (r *stubMemberRepo) GetByNickname(context.Context, string) (*entity.Member, error) {
	return r.member, r.err
}

func (r *stubMemberRepo) Update(context.Context, *entity.Member) error { return r.err }

func (r *stubMemberRepo) SearchByNickname(context.Context, string) ([]entity.MemberProfile, error) {
	return nil, r.err
}

var _ repository.MemberRepository = (*stubMemberRepo)(nil)

func testContext(t *testing.T, method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Set(middleware.CtxMemberIDKey, int64(7))
	return c, w
}

func newHandlerWithMembers(members repository.MemberRepository) *MemberHandler {
	svc := &application.MemberService{Members: members}
	return NewMemberHandler(svc, nil, "localhost", false)
}

func TestInfoStatusMapping(t *testing.T) {
	t.Parallel()

	// A missing member is the caller's problem.
	h := newHandlerWithMembers(&stubMemberRepo{err: repository.ErrNotFound})
	c, w := testContext(t, http.MethodGet, "/api/members/me")
	h.Info(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing member: got %d, want %d", w.Code, http.StatusNotFound)
	}

	// A store failure is ours.
	h = newHandlerWithMembers(&stubMemberRepo{err: errors.New("connection reset")})
	c, w = testContext(t, http.MethodGet, "/api/members/me")
	h.Info(c)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("store failure: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestWithdrawStatusMapping(t *testing.T) {
	t.Parallel()

	h := newHandlerWithMembers(&stubMemberRepo{err: repository.ErrNotFound})
	c, w := testContext(t, http.MethodDelete, "/api/members/me")
	h.Withdraw(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing member: got %d, want %d", w.Code, http.StatusNotFound)
	}

	h = newHandlerWithMembers(&stubMemberRepo{err: errors.New("connection reset")})
	c, w = testContext(t, http.MethodDelete, "/api/members/me")
	h.Withdraw(c)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("store failure: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
