package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/core/ports"
)

// uploadFormFiles pushes every file posted under field to the image host and
// returns the delivery URLs, preserving submission order. A request without
// the field yields an empty slice.
func uploadFormFiles(c echo.Context, up ports.ImageUploader, field, folder string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	var urls []string
	for _, fh := range form.File[field] {
		url, err := uploadOne(c, up, fh, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// uploadFormFile handles a single optional file field. Returns "" when the
// field was not submitted.
func uploadFormFile(c echo.Context, up ports.ImageUploader, field, folder string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return uploadOne(c, up, fh, folder)
}

func uploadOne(c echo.Context, up ports.ImageUploader, fh *multipart.FileHeader, folder string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	url, err := up.Upload(c.Request().Context(), f, folder)
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", fh.Filename, err)
	}
	return url, nil
}
