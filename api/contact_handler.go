package api

import (
	"encoding/json"
	"net/http"

	"github.com/altos-estudio/altos-backend/config"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    services.Mailer
	recipient string
}

func newContactHandler(mailer services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()
	c := config.New()

	recipient := config.GetString(c, "CONTACT_RECIPIENT", "")
	if recipient == "" {
		recipient = config.GetString(c, "RESEND_FROM_EMAIL", "")
	}

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
		recipient: recipient,
	}
}

type contactPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// submit validates the contact form and dispatches the inquiry email. No
// email is sent when validation fails.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Name == "" || payload.Email == "" || payload.Message == "" || payload.ProjectType == "" {
			h.responder.WriteJSONStatus(w, http.StatusBadRequest, map[string]string{
				"error": "Missing required fields",
			})
			return
		}

		subject, body := services.ContactEmail(
			payload.Name, payload.Email, payload.Phone, payload.ProjectType, payload.Message)

		if err := h.mailer.Send(subject, body, []string{h.recipient}); err != nil {
			h.logger.Error().Err(err).Msg("Contact form error")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
			return
		}

		h.responder.WriteJSON(w, ActionResult{
			Success: true,
			Message: "Email sent successfully",
		})
	}
}
