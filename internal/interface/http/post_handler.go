package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/application"
	"github.com/tripmoa/trip-backend/internal/domain/entity"
	repo "github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/internal/interface/middleware"
	"github.com/tripmoa/trip-backend/pkg/response"
	"github.com/tripmoa/trip-backend/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Content     string   `json:"content" binding:"required"`
	CategoryIDs []int64  `json:"category_ids" binding:"omitempty,dive,gt=0"`
	LocationIDs []int64  `json:"location_ids" binding:"omitempty,dive,gt=0"`
	ImageIDs    []int64  `json:"image_ids" binding:"omitempty,dive,gt=0"`
	Tags        []string `json:"tags" binding:"omitempty,dive,min=1,max=30"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	postID, err := h.Svc.CreatePost(c.Request.Context(), middleware.MemberID(c), application.CreatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.CategoryIDs,
		LocationIDs: req.LocationIDs,
		ImageIDs:    req.ImageIDs,
		Tags:        req.Tags,
	})
	if err != nil {
		var unknown *application.UnknownUserError
		if errors.As(err, &unknown) {
			response.Error[any](c, http.StatusNotFound, "member not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("create post failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post_id": postID}, "post created")
}

func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return
	}

	p, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load post", nil)
		return
	}

	response.Success(c, http.StatusOK, postView(p), "post")
}

func postView(p *entity.Post) gin.H {
	categories := make([]gin.H, 0, len(p.Categories))
	for _, pc := range p.Categories {
		categories = append(categories, gin.H{"id": pc.Category.ID, "name": pc.Category.Name})
	}
	locations := make([]gin.H, 0, len(p.Locations))
	for _, l := range p.Locations {
		locations = append(locations, gin.H{
			"id": l.ID, "name": l.Name, "address": l.Address, "lat": l.Lat, "lng": l.Lng,
		})
	}
	images := make([]gin.H, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, gin.H{"id": img.ID, "url": img.URL})
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}
	return gin.H{
		"post_id":    p.ID,
		"member_id":  p.MemberID,
		"title":      p.Title,
		"content":    p.Content,
		"categories": categories,
		"locations":  locations,
		"images":     images,
		"tags":       tags,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}
