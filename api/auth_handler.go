package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *database.UserRepo
	sessions  sessionMiddleware
	validate  *validator.Validate
}

func newAuthHandler(users *database.UserRepo, sessions sessionMiddleware, validate *validator.Validate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
		sessions:  sessions,
		validate:  validate,
	}
}

// loginScreen is what an unauthenticated browser lands on. Authenticated
// visitors never reach it; the session middleware redirects them to the
// dashboard first.
func (h authHandler) loginScreen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"page": "login",
		})
	}
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// login verifies credentials and issues the session cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		user, err := h.users.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
			h.responder.WriteJSONStatus(w, http.StatusUnauthorized, ActionResult{
				Success: false,
				Error:   "Invalid credentials.",
			})
			return
		}

		if err := h.sessions.issue(w, user); err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue session")
			h.responder.WriteError(w, errs.NewInternalError("failed to start session"))
			return
		}

		h.responder.WriteJSON(w, ActionResult{Success: true})
	}
}

// logout clears the session cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.clear(w)
		h.responder.WriteJSON(w, ActionResult{Success: true})
	}
}

type registerPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// register creates an admin account, pre-checking the email for a friendly
// duplicate message.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			h.responder.WriteValidationErrors(w, fieldErrors(err))
			return
		}

		existing, err := h.users.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteJSONStatus(w, http.StatusConflict, ActionResult{
				Success: false,
				Message: "Email already exists.",
			})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := models.User{
			Name:     payload.Name,
			Email:    payload.Email,
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := h.users.Add(&user); err != nil {
			if errors.Is(err, errs.ErrEmailTaken) {
				h.responder.WriteJSONStatus(w, http.StatusConflict, ActionResult{
					Success: false,
					Message: "Email already exists.",
				})
				return
			}
			h.logger.Error().Err(err).Msg("Failed to create user")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Message: "Failed to create account.",
			})
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, ActionResult{
			Success: true,
			Message: "Account created successfully!",
		})
	}
}
