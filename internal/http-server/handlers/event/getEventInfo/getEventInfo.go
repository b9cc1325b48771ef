package getEventInfo

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventViewer/internal/format"
	"eventViewer/internal/lib/api/response"
	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/models"
	"eventViewer/internal/schedule"
)

type EventInfoResponse struct {
	response.Response
	Event         EventDetail    `json:"event"`
	RelatedEvents []RelatedEvent `json:"related_events"`
}

// EventDetail is the full detail view: untruncated description, speaker
// records and the preferred link.
type EventDetail struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	EventType   string           `json:"event_type"`
	TypeLabel   string           `json:"type_label"`
	TimeRange   string           `json:"time_range"`
	Description string           `json:"description,omitempty"`
	Speakers    []models.Speaker `json:"speakers,omitempty"`
	Permission  string           `json:"permission"`
	URL         string           `json:"url,omitempty"`
}

// RelatedEvent is the short form used for "see also" navigation.
type RelatedEvent struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TypeLabel  string `json:"type_label"`
	TimeRange  string `json:"time_range"`
	Permission string `json:"permission"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	Events(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthChecker
type AuthChecker interface {
	Authenticated() bool
}

func New(log *slog.Logger, provider EventsProvider, auth AuthChecker, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		events, err := provider.Events(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		authenticated := auth.Authenticated()

		event, found := findVisible(events, eventID, authenticated)
		if !found {
			// An event hidden from this viewer looks the same as one
			// that does not exist.
			log.Info("event not found", slog.Bool("authenticated", authenticated))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}

		related := schedule.ResolveRelated(event, events, authenticated)

		log.Info("event info successfully received", slog.Int("related", len(related)))

		responseOK(w, r, event, related, loc)
	}
}

func findVisible(events []models.Event, id int, authenticated bool) (models.Event, bool) {
	for _, e := range schedule.Visible(events, authenticated) {
		if e.ID == id {
			return e, true
		}
	}

	return models.Event{}, false
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event, related []models.Event, loc *time.Location) {
	relatedViews := make([]RelatedEvent, 0, len(related))
	for _, e := range related {
		relatedViews = append(relatedViews, RelatedEvent{
			ID:         e.ID,
			Name:       e.Name,
			TypeLabel:  format.EventType(e.EventType),
			TimeRange:  format.TimeRange(e.StartTime, e.EndTime, loc),
			Permission: e.Permission,
		})
	}

	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event: EventDetail{
			ID:          event.ID,
			Name:        event.Name,
			EventType:   event.EventType,
			TypeLabel:   format.EventType(event.EventType),
			TimeRange:   format.TimeRange(event.StartTime, event.EndTime, loc),
			Description: event.Description,
			Speakers:    event.Speakers,
			Permission:  event.Permission,
			URL:         event.URL(),
		},
		RelatedEvents: relatedViews,
	})
}
