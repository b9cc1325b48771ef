// Package upstream is the single data source of the service: the remote
// events API. It owns the parsing boundary; everything past it can trust
// event records to be well-formed.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventViewer/internal/config"
	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/models"
)

// StatusError is a non-success response from the upstream API. The proxy
// handler mirrors its code and reason back to the caller.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d %s", e.Code, e.Reason)
}

type Client struct {
	url      string
	http     *http.Client
	log      *slog.Logger
	validate *validator.Validate
}

func New(cfg config.Upstream, log *slog.Logger) *Client {
	return &Client{
		url: cfg.URL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:      log,
		validate: validator.New(),
	}
}

// Events issues a single GET to the upstream API and returns the decoded
// batch. There are no retries; a failed fetch surfaces immediately.
//
// Records that fail validation are dropped with a warning rather than
// failing the whole batch. Records without an explicit permission are
// normalized to public here, once, so the rest of the pipeline can match
// on the exact value.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	const op = "upstream.Events"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Reason: reasonPhrase(resp),
		}
	}

	var events []models.Event
	if err = json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	valid := make([]models.Event, 0, len(events))
	for _, e := range events {
		if err = c.validate.Struct(e); err != nil {
			c.log.Warn("dropping malformed event record",
				slog.Int("id", e.ID),
				sl.Err(err),
			)
			continue
		}
		if e.Permission == "" {
			e.Permission = models.PermissionPublic
		}
		valid = append(valid, e)
	}

	return valid, nil
}

// reasonPhrase extracts the reason from "200 OK"-style status lines,
// falling back to the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	if parts := strings.SplitN(resp.Status, " ", 2); len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return http.StatusText(resp.StatusCode)
}
