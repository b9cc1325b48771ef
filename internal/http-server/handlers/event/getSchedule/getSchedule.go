package getSchedule

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventViewer/internal/format"
	"eventViewer/internal/lib/api/response"
	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/models"
	"eventViewer/internal/schedule"
)

type ScheduleResponse struct {
	response.Response
	Authenticated bool        `json:"authenticated"`
	Groups        []GroupView `json:"groups"`
}

// GroupView is one calendar day of the schedule.
type GroupView struct {
	Date   string      `json:"date"`
	Events []EventView `json:"events"`
}

// EventView is the compact card representation: formatted labels and a
// truncated description.
type EventView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	EventType   string   `json:"event_type"`
	TypeLabel   string   `json:"type_label"`
	TimeRange   string   `json:"time_range"`
	Description string   `json:"description,omitempty"`
	Speakers    []string `json:"speakers,omitempty"`
	Permission  string   `json:"permission"`
	URL         string   `json:"url,omitempty"`
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
		const op = "handlers.event.getSchedule.New"

		log := log.With(slog.String("op", op))

		events, err := provider.Events(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		authenticated := auth.Authenticated()

		groups := schedule.GroupByDate(schedule.Visible(events, authenticated), loc)

		log.Info("schedule built",
			slog.Int("events", len(events)),
			slog.Int("groups", len(groups)),
			slog.Bool("authenticated", authenticated),
		)

		responseOK(w, r, groups, authenticated, loc)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, groups []schedule.Group, authenticated bool, loc *time.Location) {
	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		gv := GroupView{
			Date:   g.Label,
			Events: make([]EventView, 0, len(g.Events)),
		}
		for _, e := range g.Events {
			gv.Events = append(gv.Events, newEventView(e, loc))
		}
		views = append(views, gv)
	}

	render.JSON(w, r, ScheduleResponse{
		Response:      response.OK(),
		Authenticated: authenticated,
		Groups:        views,
	})
}

func newEventView(e models.Event, loc *time.Location) EventView {
	speakers := make([]string, 0, len(e.Speakers))
	for _, s := range e.Speakers {
		speakers = append(speakers, s.Name)
	}

	return EventView{
		ID:          e.ID,
		Name:        e.Name,
		EventType:   e.EventType,
		TypeLabel:   format.EventType(e.EventType),
		TimeRange:   format.TimeRange(e.StartTime, e.EndTime, loc),
		Description: format.Truncate(e.Description, format.DescriptionLimit),
		Speakers:    speakers,
		Permission:  e.Permission,
		URL:         e.URL(),
	}
}
