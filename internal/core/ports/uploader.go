package ports

import (
	"context"
	"io"
)

// ImageUploader sends a binary blob to the image-hosting collaborator and
// returns the public URL it is served from. folder groups assets by entity
// kind ("properties", "compounds", "developers").
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}
