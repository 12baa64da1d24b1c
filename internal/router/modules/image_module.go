package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripmoa/trip-backend/internal/container"
	handlers "github.com/tripmoa/trip-backend/internal/interface/http"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// ImageModule wires the image upload endpoint.
type ImageModule struct {
	Handler *handlers.ImageHandler
	JWT     *helpers.JWTManager
}

func NewImageModule(h *handlers.ImageHandler, jwt *helpers.JWTManager) *ImageModule {
	return &ImageModule{Handler: h, JWT: jwt}
}

func (m *ImageModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByMemberID(), nil))
	{
		auth.POST("/images", m.Handler.Upload)
	}
}
