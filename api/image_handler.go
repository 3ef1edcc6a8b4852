package api

import (
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightpath-arts/site-backend/errs"
	"github.com/brightpath-arts/site-backend/storage"
)

type imageHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    storage.ImageStore
}

func newImageHandler(images storage.ImageStore) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// serveImage streams a stored image with its inferred content type
// @Summary Serve image
// @Description Streams raw image bytes; content type is inferred from the extension
// @Tags Images
// @Produce image/jpeg
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} MsgResponse "Not Found - Image not found"
// @Failure 500 {object} MsgResponse "Internal Server Error"
// @Router /images/{filename} [get]
func (h imageHandler) serveImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")

		// Anything trying to escape the flat namespace is just absent.
		if filename == "" || filename != path.Base(filename) {
			h.responder.WriteError(w, errs.NewNotFoundError("Image not found"))
			return
		}

		stream, contentType, err := h.images.Retrieve(r.Context(), filename)
		if errors.Is(err, storage.ErrNotFound) {
			h.responder.WriteError(w, errs.NewNotFoundError("Image not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("retrieve", filename, err))
			return
		}
		defer stream.Close()

		w.Header().Set("Content-Type", contentType)
		if _, err := io.Copy(w, stream); err != nil {
			h.logger.Error().Err(err).Str("filename", filename).Msg("error streaming image")
		}
	}
}
