package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripmoa/trip-backend/internal/container"
	handlers "github.com/tripmoa/trip-backend/internal/interface/http"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// MemberModule wires the identity endpoints.
// Public: POST /api/members, POST /api/login, POST /api/refresh
// Protected: GET/PUT/DELETE /api/members/me, search, listings, logout.
type MemberModule struct {
	Handler *handlers.MemberHandler
	JWT     *helpers.JWTManager
}

func NewMemberModule(h *handlers.MemberHandler, jwt *helpers.JWTManager) *MemberModule {
	return &MemberModule{Handler: h, JWT: jwt}
}

func (m *MemberModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/members", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByMemberID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/members/me", m.Handler.Info)
		auth.PUT("/members/me", m.Handler.UpdateProfile)
		auth.DELETE("/members/me", m.Handler.Withdraw)
		auth.GET("/members/search", m.Handler.Search)
		auth.GET("/members/me/posts", m.Handler.MyPosts)
		auth.GET("/members/me/comments", m.Handler.MyComments)
		auth.GET("/members/me/scraps", m.Handler.MyScraps)
	}
}
