package api

import (
	"encoding/json"
	"net/http"

	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *database.UserRepo
}

func newSettingsHandler(users *database.UserRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
	}
}

// profile returns the signed-in admin's account details.
func (h settingsHandler) profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxSession(r.Context())

		user, err := h.users.FindByID(session.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// changePassword verifies the current password before re-hashing the new one.
func (h settingsHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxSession(r.Context())

		var payload changePasswordPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if len(payload.NewPassword) < 6 {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
				"invalid password", "newPassword", "Password must be at least 6 characters"))
			return
		}

		user, err := h.users.FindByID(session.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.CurrentPassword)) != nil {
			h.responder.WriteJSONStatus(w, http.StatusUnauthorized, ActionResult{
				Success: false,
				Error:   "Current password is incorrect.",
			})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		if err := h.users.UpdatePassword(user.ID, string(hash)); err != nil {
			h.logger.Error().Err(err).Msg("Failed to update password")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Error:   "Failed to update password.",
			})
			return
		}

		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Password updated successfully!"})
	}
}
