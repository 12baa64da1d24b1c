package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/application"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/helpers"
	"github.com/tripmoa/trip-backend/pkg/response"
	"github.com/tripmoa/trip-backend/pkg/validation"
)

type MemberHandler struct {
	Svc     *application.MemberService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewMemberHandler(svc *application.MemberService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *MemberHandler {
	return &MemberHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	UserID   string `json:"user_id" binding:"required,userid"`
	Nickname string `json:"nickname" binding:"required,nickname"`
	Password string `json:"password" binding:"required,pwd"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type loginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	UserID   string `json:"user_id" binding:"required,userid"`
	Nickname string `json:"nickname" binding:"required,nickname"`
	Password string `json:"password" binding:"required,pwd"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

func (h *MemberHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		UserID:   req.UserID,
		Nickname: req.Nickname,
		Password: req.Password,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		var dup *application.DuplicateError
		if errors.As(err, &dup) {
			response.Error[any](c, http.StatusConflict, "member already exists", dup.Details())
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to register member", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"member_id": m.ID,
		"user_id":   m.UserID,
		"nickname":  m.Nickname,
	}, "member registered")
}

func (h *MemberHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		var unknown *application.UnknownUserError
		switch {
		case errors.As(err, &unknown):
			response.Error[any](c, http.StatusUnauthorized, "unknown user id", map[string]string{"user_id": unknown.UserID})
		case errors.Is(err, application.ErrMemberWithdrawn):
			response.Error[any](c, http.StatusForbidden, application.ErrMemberWithdrawn.Error(), nil)
		case errors.Is(err, application.ErrPasswordMismatch):
			response.Error[any](c, http.StatusUnauthorized, application.ErrPasswordMismatch.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	pair, err := h.Svc.IssueTokens(c.Request.Context(), m)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to issue tokens", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"member_id": m.ID,
		"user_id":   m.UserID,
		"nickname":  m.Nickname,
	}, "login successful")
}

func (h *MemberHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed")
}

func (h *MemberHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Info returns the member detail view with post and scrap counts.
func (h *MemberHandler) Info(c *gin.Context) {
	info, err := h.Svc.Info(c.Request.Context(), middleware.MemberID(c))
	if err != nil {
		var unknown *application.UnknownUserError
		if errors.As(err, &unknown) {
			response.Error[any](c, http.StatusNotFound, "member not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load member info", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user_id":     info.UserID,
		"nickname":    info.Nickname,
		"image_url":   info.ImageURL,
		"post_count":  info.PostCount,
		"scrap_count": info.ScrapCount,
	}, "member info")
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Svc.UpdateProfile(c.Request.Context(), middleware.MemberID(c), application.UpdateProfileInput{
		UserID:   req.UserID,
		Nickname: req.Nickname,
		Password: req.Password,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		var dup *application.DuplicateError
		if errors.As(err, &dup) {
			response.Error[any](c, http.StatusConflict, "member already exists", dup.Details())
			return
		}
		var unknown *application.UnknownUserError
		if errors.As(err, &unknown) {
			response.Error[any](c, http.StatusNotFound, "member not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true}, "profile updated")
}

// Withdraw soft-deletes the member and ends the session.
func (h *MemberHandler) Withdraw(c *gin.Context) {
	if err := h.Svc.Withdraw(c.Request.Context(), middleware.MemberID(c)); err != nil {
		var unknown *application.UnknownUserError
		if errors.As(err, &unknown) {
			response.Error[any](c, http.StatusNotFound, "member not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to withdraw member", nil)
		return
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"withdrawn": true}, "member withdrawn")
}

func (h *MemberHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	profiles, err := h.Svc.Search(c.Request.Context(), term)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	out := make([]gin.H, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, gin.H{"nickname": p.Nickname, "image_url": p.ImageURL})
	}
	response.Success(c, http.StatusOK, out, "members")
}

func (h *MemberHandler) MyPosts(c *gin.Context) {
	posts, err := h.Svc.MyPosts(c.Request.Context(), middleware.MemberID(c))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, gin.H{"post_id": p.ID, "title": p.Title, "created_at": p.CreatedAt})
	}
	response.Success(c, http.StatusOK, out, "my posts")
}

func (h *MemberHandler) MyComments(c *gin.Context) {
	comments, err := h.Svc.MyComments(c.Request.Context(), middleware.MemberID(c))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list comments", nil)
		return
	}
	out := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		out = append(out, gin.H{
			"comment_id": cm.ID,
			"post_id":    cm.PostID,
			"content":    cm.Content,
			"created_at": cm.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "my comments")
}

func (h *MemberHandler) MyScraps(c *gin.Context) {
	scraps, err := h.Svc.MyScraps(c.Request.Context(), middleware.MemberID(c))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list scraps", nil)
		return
	}
	out := make([]gin.H, 0, len(scraps))
	for _, s := range scraps {
		out = append(out, gin.H{"post_id": s.PostID, "title": s.Title, "created_at": s.CreatedAt})
	}
	response.Success(c, http.StatusOK, out, "my scraps")
}
