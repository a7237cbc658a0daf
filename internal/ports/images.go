package ports

import (
	"context"
	"io"

	"aurum-admin-core/internal/domain"
)

// ImageStore uploads shop and product images to the media CDN.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*domain.UploadedImage, error)
}
