package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripmoa/trip-backend/internal/container"
	handlers "github.com/tripmoa/trip-backend/internal/interface/http"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// PostModule wires the post aggregate endpoints.
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByMemberID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts/:id", m.Handler.Get)
	}
}
