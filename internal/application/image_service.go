package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	repo "github.com/tripmoa/trip-backend/internal/domain/repository"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// ImageService uploads post images to the bucket and records them as Image
// rows, which posts later reference by id.
type ImageService struct {
	Images    repo.ImageRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewImageService(images repo.ImageRepository, gcs *storage.Client, bucket string, logger *logrus.Logger) *ImageService {
	return &ImageService{Images: images, GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// Upload streams the file into the bucket and persists an Image record.
func (s *ImageService) Upload(ctx context.Context, memberID int64, r io.Reader, filename, contentType string) (*entity.Image, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectKey := filepath.ToSlash(filepath.Join("posts", fmt.Sprintf("%d", memberID), uuid.NewString()+ext))

	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectKey, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &entity.Image{URL: url, ObjectKey: objectKey}
	if err := s.Images.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("record image: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"image_id": img.ID, "object_key": objectKey}).Info("image uploaded")
	}
	return img, nil
}
