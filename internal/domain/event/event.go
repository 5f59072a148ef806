package event

import (
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

var ErrNotFound = errors.New("event: not found")

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Event struct {
	ID                  string    `json:"id" bson:"id"`
	Title               string    `json:"title" bson:"title"`
	Description         string    `json:"description" bson:"description"`
	EventDate           time.Time `json:"event_date" bson:"event_date"`
	Location            string    `json:"location" bson:"location"`
	ImageURL            *string   `json:"image_url" bson:"image_url"`
	Status              Status    `json:"status" bson:"status"`
	MaxParticipants     *int      `json:"max_participants" bson:"max_participants"`
	CurrentParticipants int       `json:"current_participants" bson:"current_participants"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
}

type CreateInput struct {
	Title           string        `json:"title" validate:"required"`
	Description     string        `json:"description" validate:"required"`
	EventDate       *isotime.Time `json:"event_date" validate:"required"`
	Location        string        `json:"location" validate:"required"`
	ImageURL        *string       `json:"image_url"`
	MaxParticipants *int          `json:"max_participants" validate:"omitempty,gte=0"`
}

// New builds an upcoming event with no participants yet.
func New(id string, in CreateInput, now time.Time) *Event {
	e := &Event{
		ID:              id,
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		ImageURL:        in.ImageURL,
		Status:          StatusUpcoming,
		MaxParticipants: in.MaxParticipants,
		CreatedAt:       isotime.Normalize(now),
	}
	if in.EventDate != nil {
		e.EventDate = isotime.Normalize(in.EventDate.Time)
	}
	return e
}
