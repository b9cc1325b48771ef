package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventViewer/internal/config"
	"eventViewer/internal/lib/logger/handlers/slogdiscard"
	"eventViewer/internal/models"
	"eventViewer/internal/upstream"
)

func newClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return upstream.New(config.Upstream{
		URL:     srv.URL,
		Timeout: 5 * time.Second,
	}, slogdiscard.NewDiscardLogger())
}

func TestEventsSuccess(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Intro to Go", "event_type": "workshop", "permission": "public",
			 "start_time": 1758042000000, "end_time": 1758045600000,
			 "speakers": [{"name": "Ada"}], "related_events": [2]},
			{"id": 2, "name": "Scaling Postgres", "event_type": "tech_talk", "permission": "private",
			 "start_time": 1758045600000, "end_time": 1758049200000,
			 "speakers": [], "related_events": []}
		]`))
	})

	events, err := client.Events(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, "Intro to Go", events[0].Name)
	assert.Equal(t, models.EventTypeWorkshop, events[0].EventType)
	assert.Equal(t, []int{2}, events[0].RelatedEvents)
	assert.Equal(t, models.PermissionPrivate, events[1].Permission)
}

func TestEventsNormalizesMissingPermission(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Open Hours", "event_type": "activity",
			 "start_time": 1758042000000, "end_time": 1758045600000,
			 "speakers": [], "related_events": []}
		]`))
	})

	events, err := client.Events(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.PermissionPublic, events[0].Permission)
}

func TestEventsDropsMalformedRecords(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Good", "event_type": "workshop",
			 "start_time": 1758042000000, "end_time": 1758045600000,
			 "speakers": [], "related_events": []},
			{"id": 2, "event_type": "banquet",
			 "start_time": 1758042000000, "end_time": 1758045600000,
			 "speakers": [], "related_events": []}
		]`))
	})

	events, err := client.Events(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].ID)
}

func TestEventsUpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	})

	_, err := client.Events(context.Background())
	require.Error(t, err)

	var statusErr *upstream.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, "Service Unavailable", statusErr.Reason)
	assert.Contains(t, statusErr.Error(), "503")
}

func TestEventsTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := upstream.New(config.Upstream{
		URL:     srv.URL,
		Timeout: time.Second,
	}, slogdiscard.NewDiscardLogger())

	_, err := client.Events(context.Background())
	require.Error(t, err)

	var statusErr *upstream.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestEventsBadJSON(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	})

	_, err := client.Events(context.Background())
	assert.Error(t, err)
}

func TestEventsEmptyBatch(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	events, err := client.Events(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
