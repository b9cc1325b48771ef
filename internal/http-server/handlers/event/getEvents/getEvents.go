package getEvents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventViewer/internal/config"
	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/models"
	"eventViewer/internal/upstream"
)

// ErrorResponse is the proxy error body, mirroring the upstream contract
// rather than the service envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	Events(ctx context.Context) ([]models.Event, error)
}

// New returns the passthrough proxy handler: the raw event batch on
// success, the upstream status mirrored with an error body on upstream
// failure, 500 on transport failure.
func New(log *slog.Logger, provider EventsProvider, cacheCfg config.Cache) http.HandlerFunc {
	cacheControl := fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(cacheCfg.Fresh.Seconds()),
		int(cacheCfg.Stale.Seconds()),
	)

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvents.New"

		log := log.With(slog.String("op", op))

		events, err := provider.Events(r.Context())
		if err != nil {
			log.Error("failed to fetch events", sl.Err(err))

			var statusErr *upstream.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, statusErr.Code)
				render.JSON(w, r, ErrorResponse{
					Error: fmt.Sprintf("Failed to fetch events: %d %s", statusErr.Code, statusErr.Reason),
				})
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrorResponse{Error: "failed to fetch events"})
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		if events == nil {
			events = []models.Event{}
		}

		// Only successful batches are cacheable; errors should be
		// retried on the next request.
		w.Header().Set("Cache-Control", cacheControl)

		render.JSON(w, r, events)
	}
}
