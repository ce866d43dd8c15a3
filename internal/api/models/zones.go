package models

import (
	"time"

	"github.com/jroosing/zonejson/internal/zonefile"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	// Text is the raw zonefile text.
	Text string `json:"text" binding:"required"`
	// Lenient skips unparseable lines instead of failing. When omitted the
	// server default applies.
	Lenient *bool `json:"lenient,omitempty"`
}

// ParseResponse is the result of a standalone parse.
type ParseResponse struct {
	Zone        zonefile.ZoneFile `json:"zone"`
	RecordCount int               `json:"record_count"`
}

// ZoneCreateRequest is the body of POST /zones.
type ZoneCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Lenient *bool  `json:"lenient,omitempty"`
}

// ZoneSummary is the list-level view of a stored zone.
type ZoneSummary struct {
	Name        string    `json:"name"`
	Origin      string    `json:"origin,omitempty"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ZoneListResponse lists all stored zones.
type ZoneListResponse struct {
	Zones []ZoneSummary `json:"zones"`
	Count int           `json:"count"`
}

// ZoneDetailResponse is one stored zone with its parsed record set.
type ZoneDetailResponse struct {
	ZoneSummary
	Zone zonefile.ZoneFile `json:"zone"`
}
