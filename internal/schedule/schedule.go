// Package schedule holds the pure pipeline that turns a flat batch of
// events into what a viewer is allowed to see: visibility filtering,
// per-day grouping and related-event resolution. Nothing here mutates
// an event or touches shared state; callers pass the authentication
// flag in explicitly.
package schedule

import (
	"sort"
	"time"

	"eventViewer/internal/format"
	"eventViewer/internal/models"
)

// Group is one calendar day of the schedule, labeled for display.
// A group always has at least one event.
type Group struct {
	Label  string
	Day    time.Time
	Events []models.Event
}

// Visible filters events by the viewer's authentication state. An
// authenticated viewer sees everything; otherwise only events with
// public permission pass. Relative order is preserved.
func Visible(events []models.Event, authenticated bool) []models.Event {
	if authenticated {
		return events
	}

	visible := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Permission == models.PermissionPublic {
			visible = append(visible, e)
		}
	}

	return visible
}

// GroupByDate partitions events into calendar-day groups in the given
// zone. Events within a group are sorted ascending by start time, ties
// keep input order. Groups are ordered by their earliest start time.
//
// The day key and the label are derived from the same zoned time, so an
// event can never be grouped under one day and labeled under another.
func GroupByDate(events []models.Event, loc *time.Location) []Group {
	byDay := make(map[string]*Group)
	order := make([]string, 0)

	for _, e := range events {
		start := time.UnixMilli(e.StartTime).In(loc)
		day := start.Format("2006-01-02")

		g, ok := byDay[day]
		if !ok {
			midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
			g = &Group{
				Label: format.DateHeader(start),
				Day:   midnight,
			}
			byDay[day] = g
			order = append(order, day)
		}
		g.Events = append(g.Events, e)
	}

	groups := make([]Group, 0, len(byDay))
	for _, day := range order {
		g := byDay[day]
		sort.SliceStable(g.Events, func(i, j int) bool {
			return g.Events[i].StartTime < g.Events[j].StartTime
		})
		groups = append(groups, *g)
	}

	// After the inner sort the first event holds the group minimum.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Events[0].StartTime < groups[j].Events[0].StartTime
	})

	return groups
}

// ResolveRelated maps the event's related-event ids to full records from
// the batch, then applies the same visibility rule. Ids with no match in
// the batch are dropped silently, as are duplicate ids; the order of the
// id list is preserved among survivors.
func ResolveRelated(event models.Event, allEvents []models.Event, authenticated bool) []models.Event {
	if len(event.RelatedEvents) == 0 {
		return nil
	}

	byID := make(map[int]models.Event, len(allEvents))
	for _, e := range allEvents {
		byID[e.ID] = e
	}

	seen := make(map[int]bool, len(event.RelatedEvents))
	related := make([]models.Event, 0, len(event.RelatedEvents))

	for _, id := range event.RelatedEvents {
		if seen[id] {
			continue
		}
		seen[id] = true

		e, ok := byID[id]
		if !ok {
			continue
		}
		related = append(related, e)
	}

	return Visible(related, authenticated)
}
