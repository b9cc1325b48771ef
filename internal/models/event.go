package models

const (
	PermissionPublic  = "public"
	PermissionPrivate = "private"
)

const (
	EventTypeWorkshop = "workshop"
	EventTypeActivity = "activity"
	EventTypeTechTalk = "tech_talk"
)

type Speaker struct {
	Name string `json:"name" validate:"required"`
}

// Event mirrors a single record of the upstream events API. Records are
// read-only once fetched; the pipeline only filters, reorders and derives
// views over them. StartTime and EndTime are milliseconds since epoch.
type Event struct {
	ID            int       `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	EventType     string    `json:"event_type" validate:"required,oneof=workshop activity tech_talk"`
	Permission    string    `json:"permission,omitempty" validate:"omitempty,oneof=public private"`
	StartTime     int64     `json:"start_time" validate:"required"`
	EndTime       int64     `json:"end_time" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Speakers      []Speaker `json:"speakers"`
	PublicURL     string    `json:"public_url,omitempty"`
	PrivateURL    string    `json:"private_url,omitempty"`
	RelatedEvents []int     `json:"related_events"`
}

// URL returns the preferred link for the event, public over private.
func (e Event) URL() string {
	if e.PublicURL != "" {
		return e.PublicURL
	}
	return e.PrivateURL
}
