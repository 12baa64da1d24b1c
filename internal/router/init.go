package router

import (
	"github.com/tripmoa/trip-backend/internal/application"
	"github.com/tripmoa/trip-backend/internal/container"
	"github.com/tripmoa/trip-backend/internal/events"
	pginfra "github.com/tripmoa/trip-backend/internal/infrastructure/postgres"
	handlers "github.com/tripmoa/trip-backend/internal/interface/http"
	"github.com/tripmoa/trip-backend/internal/router/modules"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// InitModules builds every repository, service, and handler from the
// container singletons and registers the feature modules. This is the
// explicit composition step: collaborators are supplied at construction
// time, not resolved at call time.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	members := pginfra.NewMemberRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	locations := pginfra.NewLocationRepository(pool)
	images := pginfra.NewImageRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	interactions := pginfra.NewInteractionRepository(pool)

	memberSvc := application.NewMemberService(
		members, posts, comments, interactions,
		helpers.BcryptHasher{},
		container.GetJWT(),
		container.GetRedis(),
		logger,
	)
	// Avoid wrapping a nil publisher in a non-nil interface.
	var pub events.Publisher
	if rp := container.GetRabbitPub(); rp != nil {
		pub = rp
	}
	postSvc := application.NewPostService(
		members, posts, categories, locations, images,
		pub,
		logger,
	)
	imageSvc := application.NewImageService(images, container.GetGCS(), cfg.GCSBucket, logger)

	memberHandler := handlers.NewMemberHandler(memberSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	postHandler := handlers.NewPostHandler(postSvc, logger)
	imageHandler := handlers.NewImageHandler(imageSvc, logger)

	r.Add(modules.NewMemberModule(memberHandler, container.GetJWT()))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT()))
	r.Add(modules.NewImageModule(imageHandler, container.GetJWT()))
}
