package login

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventViewer/internal/config"
	"eventViewer/internal/lib/api/response"
	"eventViewer/internal/lib/logger/sl"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Authenticated bool `json:"authenticated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionWriter
type SessionWriter interface {
	SetAuthenticated(v bool) error
}

// New returns the login handler. Exactly one credential pair is
// accepted; anything else gets a generic rejection. The gate only
// widens what the viewer sees, it protects nothing.
func New(log *slog.Logger, session SessionWriter, creds config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if req.Username != creds.Username || req.Password != creds.Password {
			log.Info("login rejected", slog.String("username", req.Username))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid username or password"))
			return
		}

		if err = session.SetAuthenticated(true); err != nil {
			log.Error("failed to save session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save session"))
			return
		}

		log.Info("login accepted", slog.String("username", req.Username))

		render.JSON(w, r, LoginResponse{
			Response:      response.OK(),
			Authenticated: true,
		})
	}
}
