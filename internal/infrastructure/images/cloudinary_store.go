package images

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const uploadFolder = "aurum"

// CloudinaryStore uploads shop and product images to Cloudinary
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	logger zerolog.Logger
}

// NewCloudinaryStore creates an image store from a CLOUDINARY_URL-style URL
func NewCloudinaryStore(cloudinaryURL string, logger zerolog.Logger) (ports.ImageStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, logger: logger}, nil
}

// Upload pushes an image and returns its CDN URL and public ID. The public
// ID is randomized so concurrent uploads of same-named files never collide.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename string) (*domain.UploadedImage, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	publicID := fmt.Sprintf("%s-%s", base, uuid.NewString())

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   uploadFolder,
		PublicID: publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info().
		Str("publicId", result.PublicID).
		Msg("Uploaded image")

	return &domain.UploadedImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}
