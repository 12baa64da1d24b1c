package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	repo "github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// PasswordHasher is the credential capability injected into the identity
// service: one-way hash plus verify. The service never sees algorithm
// details.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// MemberService owns the member identity lifecycle: registration with
// uniqueness enforcement, credential verification, profile update,
// withdrawal, search, and the member info aggregation.
//
// Uniqueness is checked read-then-write without an application lock; the
// unique constraints in db/migrations are what close that race under
// concurrent registrations.
type MemberService struct {
	Members      repo.MemberRepository
	Posts        repo.PostRepository
	Comments     repo.CommentRepository
	Interactions repo.InteractionRepository
	Hasher       PasswordHasher
	JWT          *helpers.JWTManager
	Redis        *redis.Client
	Logger       *logrus.Logger
}

func NewMemberService(members repo.MemberRepository, posts repo.PostRepository, comments repo.CommentRepository, interactions repo.InteractionRepository, hasher PasswordHasher, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *MemberService {
	return &MemberService{
		Members:      members,
		Posts:        posts,
		Comments:     comments,
		Interactions: interactions,
		Hasher:       hasher,
		JWT:          jwt,
		Redis:        rdb,
		Logger:       logger,
	}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(memberID int64) string {
	return "member:session:" + strconv.FormatInt(memberID, 10)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type RegisterInput struct {
	UserID   string
	Nickname string
	Password string
	ImageURL string
}

// Register creates a new active member. Both user id and nickname are
// checked against the store unconditionally; every collision is reported in
// a single *DuplicateError.
func (s *MemberService) Register(ctx context.Context, in RegisterInput) (*entity.Member, error) {
	if err := s.checkDuplicates(ctx, nil, in.UserID, in.Nickname); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	m := &entity.Member{
		UserID:       in.UserID,
		Nickname:     in.Nickname,
		PasswordHash: hash,
		ImageURL:     in.ImageURL,
		Status:       entity.StatusActive,
	}
	if err := s.Members.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"member_id": m.ID, "user_id": m.UserID}).Info("member registered")
	}
	return m, nil
}

// checkDuplicates collects every uniqueness violation for the candidate
// values. With no current member (registration) both fields are checked;
// on update a field is only checked when the candidate differs from the
// member's own value, so a self-match is never a collision.
func (s *MemberService) checkDuplicates(ctx context.Context, current *entity.Member, userID, nickname string) error {
	fields := make(map[ConflictField]string)

	if current == nil || current.UserID != userID {
		_, err := s.Members.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			fields[FieldUserID] = userID
		case !errors.Is(err, repo.ErrNotFound):
			return fmt.Errorf("lookup by user id: %w", err)
		}
	}

	if current == nil || current.Nickname != nickname {
		_, err := s.Members.GetByNickname(ctx, nickname)
		switch {
		case err == nil:
			fields[FieldNickname] = nickname
		case !errors.Is(err, repo.ErrNotFound):
			return fmt.Errorf("lookup by nickname: %w", err)
		}
	}

	if len(fields) > 0 {
		return &DuplicateError{Fields: fields}
	}
	return nil
}

// Login verifies credentials in a fixed order: existence, withdrawal
// status, then password. A withdrawn account fails before any password
// work so a correct password is never revealed for it.
func (s *MemberService) Login(ctx context.Context, userID, password string) (*entity.Member, error) {
	m, err := s.Members.GetByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, &UnknownUserError{UserID: userID}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup member: %w", err)
	}

	if m.Withdrawn() {
		return nil, ErrMemberWithdrawn
	}

	if !s.Hasher.Verify(password, m.PasswordHash) {
		return nil, ErrPasswordMismatch
	}
	return m, nil
}

// IssueTokens generates an access/refresh pair and records the session in
// Redis so the auth middleware can resolve the current member.
func (s *MemberService) IssueTokens(ctx context.Context, m *entity.Member) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(m.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(m.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := sessionKey(m.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"member_id":  m.ID,
			"user_id":    m.UserID,
			"nickname":   m.Nickname,
			"image_url":  m.ImageURL,
			"sid":        sid,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis session write failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and both tokens, provided the refresh
// token matches the live session.
func (s *MemberService) Refresh(ctx context.Context, refreshToken string) (TokenPair, int64, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, 0, ErrPasswordMismatch
	}
	m, err := s.Members.GetByID(ctx, claims.MemberID)
	if err != nil || m.Withdrawn() {
		return TokenPair{}, 0, &UnknownUserError{UserID: strconv.FormatInt(claims.MemberID, 10)}
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(m.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, 0, &UnknownUserError{UserID: m.UserID}
		}
	}
	pair, err := s.IssueTokens(ctx, m)
	if err != nil {
		return TokenPair{}, 0, err
	}
	return pair, m.ID, nil
}

type UpdateProfileInput struct {
	UserID   string
	Nickname string
	Password string
	ImageURL string
}

// UpdateProfile mutates the member's identity fields. The password is
// re-hashed unconditionally, even when unchanged.
func (s *MemberService) UpdateProfile(ctx context.Context, memberID int64, in UpdateProfileInput) error {
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}

	if err := s.checkDuplicates(ctx, m, in.UserID, in.Nickname); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	m.UpdateProfile(in.UserID, hash, in.Nickname, in.ImageURL)
	if err := s.Members.Update(ctx, m); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// Withdraw soft-deletes the member and drops any live session. The status
// flip is one-way; calling it again is a state no-op.
func (s *MemberService) Withdraw(ctx context.Context, memberID int64) error {
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}

	m.Withdraw()
	if err := s.Members.Update(ctx, m); err != nil {
		return fmt.Errorf("withdraw member: %w", err)
	}

	if s.Redis != nil {
		if rErr := s.Redis.Del(ctx, sessionKey(m.ID)).Err(); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("member_id", m.ID).Warn("session delete failed")
		}
	}

	if s.Logger != nil {
		s.Logger.WithField("member_id", m.ID).Info("member withdrawn")
	}
	return nil
}

// Search matches nicknames containing term and returns the public
// projection only.
func (s *MemberService) Search(ctx context.Context, term string) ([]entity.MemberProfile, error) {
	return s.Members.SearchByNickname(ctx, term)
}

// Info aggregates the member's detail view with post and scrap counts.
// A member with no activity gets zero counts, not an error.
func (s *MemberService) Info(ctx context.Context, memberID int64) (*entity.MemberInfo, error) {
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	postCount, err := s.Posts.CountByAuthor(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	scrapCount, err := s.Interactions.CountScrapsByMember(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("count scraps: %w", err)
	}

	return &entity.MemberInfo{
		UserID:     m.UserID,
		Nickname:   m.Nickname,
		ImageURL:   m.ImageURL,
		PostCount:  postCount,
		ScrapCount: scrapCount,
	}, nil
}

// MyPosts lists the member's own posts, newest first.
func (s *MemberService) MyPosts(ctx context.Context, memberID int64) ([]entity.PostSummary, error) {
	return s.Posts.FindByAuthor(ctx, memberID)
}

// MyComments lists the member's own comments.
func (s *MemberService) MyComments(ctx context.Context, memberID int64) ([]entity.Comment, error) {
	return s.Comments.FindByMember(ctx, memberID)
}

// MyScraps lists the posts the member has scrapped.
func (s *MemberService) MyScraps(ctx context.Context, memberID int64) ([]entity.ScrapSummary, error) {
	return s.Interactions.FindScrapsByMember(ctx, memberID)
}

func (s *MemberService) getMember(ctx context.Context, memberID int64) (*entity.Member, error) {
	m, err := s.Members.GetByID(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, &UnknownUserError{UserID: strconv.FormatInt(memberID, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup member: %w", err)
	}
	return m, nil
}
