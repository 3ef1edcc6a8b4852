package api

import (
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/brightpath-arts/site-backend/errs"
)

const (
	// imageFormField is the single file field accepted on create/update.
	imageFormField = "image"

	// maxImageBytes caps an uploaded image at 5MB.
	maxImageBytes = 5_000_000

	// maxUploadBytes caps the whole multipart request body: the image
	// plus headroom for the text fields and part boundaries. Oversized
	// requests die while parsing, before anything is stored.
	maxUploadBytes = maxImageBytes + 64<<10
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".svg":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/svg+xml": true,
}

// validateUpload enforces the upload contract: size cap, and extension
// AND declared MIME type both inside the allowed image set. A disallowed
// extension fails no matter what MIME type the client declares.
func validateUpload(header *multipart.FileHeader) error {
	if header.Size > maxImageBytes {
		return errs.NewMaxBodySizeError("Image must be 5MB or smaller")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return errs.NewUnsupportedMediaTypeError("Only image files are allowed")
	}

	declared := header.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mediaType
	}
	if !allowedImageMIMEs[declared] {
		return errs.NewUnsupportedMediaTypeError("Only image files are allowed")
	}

	return nil
}
