package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventViewer/internal/lib/api/response"
	"eventViewer/internal/lib/logger/sl"
)

type LogoutResponse struct {
	response.Response
	Authenticated bool `json:"authenticated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionWriter
type SessionWriter interface {
	SetAuthenticated(v bool) error
}

func New(log *slog.Logger, session SessionWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		if err := session.SetAuthenticated(false); err != nil {
			log.Error("failed to clear session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to clear session"))
			return
		}

		log.Info("logged out")

		render.JSON(w, r, LogoutResponse{
			Response:      response.OK(),
			Authenticated: false,
		})
	}
}
