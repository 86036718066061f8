package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/media"
	"github.com/rs/zerolog"
)

type MediaService struct {
	storage  media.Storage
	maxBytes int64
	logger   *zerolog.Logger
}

func NewMediaService(storage media.Storage, maxBytes int64, logger *zerolog.Logger) *MediaService {
	return &MediaService{
		storage:  storage,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores an uploaded image under folder and returns its URL.
func (s *MediaService) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return "", errs.NewRequestEntityTooLargeError(fmt.Sprintf("File exceeds the %d byte limit", s.maxBytes))
	}

	body, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer body.Close()

	url, err := s.storage.Save(ctx, folder, file.Filename, body)
	switch {
	case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrUnknownFolder):
		return "", errs.NewBadRequestError(err.Error(), true, nil, []errs.FieldError{{Field: "file", Error: err.Error()}}, nil)
	case err != nil:
		return "", err
	}

	s.logger.Info().Str("folder", folder).Str("url", url).Msg("media uploaded")
	return url, nil
}
