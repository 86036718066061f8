// Package media stores uploaded images on local disk or in an S3
// compatible bucket and returns the URL they are served from.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosnews/gosnews/internal/config"
)

// Upload folders, one per kind of content.
const (
	FolderNews     = "news"
	FolderLeaders  = "leaders"
	FolderPartners = "partners"
	FolderGuides   = "guides"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrUnknownFolder   = errors.New("unknown upload folder")
)

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

var folders = map[string]bool{
	FolderNews:     true,
	FolderLeaders:  true,
	FolderPartners: true,
	FolderGuides:   true,
}

// Storage persists an uploaded file and returns its public URL.
type Storage interface {
	Save(ctx context.Context, folder, filename string, body io.Reader) (string, error)
}

// New returns the Storage selected by cfg.Driver.
func New(ctx context.Context, cfg config.MediaConfig) (Storage, error) {
	switch cfg.Driver {
	case config.MediaDriverLocal:
		return NewLocal(cfg.LocalDir, cfg.URLPrefix), nil
	case config.MediaDriverS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown media driver: %s", cfg.Driver)
	}
}

// objectKey returns "<folder>/<uuid><ext>" and the content type of the
// upload, rejecting anything that is not an image.
func objectKey(folder, filename string) (string, string, error) {
	if !folders[folder] {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownFolder, folder)
	}

	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := imageTypes[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	return folder + "/" + uuid.NewString() + ext, contentType, nil
}
