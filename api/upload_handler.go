package api

import (
	"net/http"

	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploads   *services.UploadService
}

func newUploadHandler(uploads *services.UploadService) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploads:   uploads,
	}
}

// upload accepts one multipart image from an authenticated admin and returns
// its public URL.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse up to the size cap plus some slack for the multipart framing.
		if err := r.ParseMultipartForm(services.MaxUploadSize + 1<<20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteJSONStatus(w, http.StatusBadRequest, map[string]string{
				"error": "No file provided",
			})
			return
		}
		defer file.Close()

		url, err := h.uploads.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Upload error")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":  true,
			"url":      url,
			"filename": url[len("/uploads/"):],
		})
	}
}
