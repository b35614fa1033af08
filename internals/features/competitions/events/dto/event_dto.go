// file: internals/features/competitions/events/dto/event_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	model "pertandinganku_backend/internals/features/competitions/events/model"
)

var reSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

/* =========================================================
   Requests: CREATE / UPDATE event
   ========================================================= */

type CreateEventRequest struct {
	EventName    string     `json:"event_name" validate:"required,max=200"`
	EventSlug    *string    `json:"event_slug" validate:"omitempty,max=200"`
	EventTags    []string   `json:"event_tags" validate:"omitempty,dive,max=50"`
	EventStartAt *time.Time `json:"event_start_at"`
	EventEndAt   *time.Time `json:"event_end_at"`
}

func (r *CreateEventRequest) Normalize() {
	r.EventName = strings.TrimSpace(r.EventName)
	for i := range r.EventTags {
		r.EventTags[i] = strings.TrimSpace(r.EventTags[i])
	}
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateEventRequest) ToModel() *model.EventModel {
	slug := ""
	if r.EventSlug != nil {
		slug = slugify(*r.EventSlug)
	}
	if slug == "" {
		slug = slugify(r.EventName)
	}
	return &model.EventModel{
		EventName:    r.EventName,
		EventSlug:    slug,
		EventStatus:  model.EventStatusDraft,
		EventTags:    pq.StringArray(r.EventTags),
		EventStartAt: r.EventStartAt,
		EventEndAt:   r.EventEndAt,
	}
}

type CreateContestRequest struct {
	ContestName string `json:"contest_name" validate:"required,max=200"`
}

func (r *CreateContestRequest) Normalize() {
	r.ContestName = strings.TrimSpace(r.ContestName)
}
