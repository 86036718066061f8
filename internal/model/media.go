package model

import (
	"github.com/gosnews/gosnews/internal/validation"
)

// UploadMediaRequest is the form part of a multipart upload. The file
// itself is read from the "file" field.
type UploadMediaRequest struct {
	Folder string `form:"folder" query:"folder" validate:"required,oneof=news leaders partners guides"`
}

func (r *UploadMediaRequest) Validate() error {
	return validation.Struct(r)
}

type UploadMediaResponse struct {
	URL string `json:"url"`
}
