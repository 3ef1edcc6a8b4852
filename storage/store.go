// Package storage abstracts where uploaded project images live. The
// backend is chosen once at startup: a local directory (persistent or
// ephemeral) or an S3 bucket. Handlers never branch on the deployment
// mode; they hold an ImageStore and ask it for public URLs.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned by Retrieve when no image exists under the given filename.
var ErrNotFound = errors.New("image not found")

// ImageStore maps filenames to image bytes.
type ImageStore interface {
	// Store writes the contents under a newly generated filename and
	// returns that filename.
	Store(ctx context.Context, contents io.Reader, originalName string) (string, error)
	// Retrieve opens the stored image and resolves its content type.
	Retrieve(ctx context.Context, filename string) (io.ReadCloser, string, error)
	// Delete removes a stored image, best effort. A missing file is not
	// an error. Accepts either a bare filename or a public path ending
	// in the filename.
	Delete(ctx context.Context, filenameOrPath string) error
	// PublicURL derives the URL clients use to fetch the image.
	PublicURL(filename string) string
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// NewFilename builds a collision-resistant stored name from an upload's
// original name: millisecond timestamp prefix, whitespace runs collapsed
// to single underscores.
func NewFilename(originalName string) string {
	sanitized := whitespaceRuns.ReplaceAllString(originalName, "_")
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + sanitized
}

// ContentTypeFor resolves a content type from the file extension alone.
// No magic-byte sniffing; anything unrecognized is served as JPEG.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
