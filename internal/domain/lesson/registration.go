package lesson

import (
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

var ErrNotFound = errors.New("lesson registration: not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Registration is a lead captured from the lessons sign-up form.
type Registration struct {
	ID                string    `json:"id" bson:"id"`
	StudentName       string    `json:"student_name" bson:"student_name"`
	ParentName        string    `json:"parent_name" bson:"parent_name"`
	Email             string    `json:"email" bson:"email"`
	Phone             string    `json:"phone" bson:"phone"`
	Age               int       `json:"age" bson:"age"`
	LessonType        string    `json:"lesson_type" bson:"lesson_type"`
	PreferredSchedule string    `json:"preferred_schedule" bson:"preferred_schedule"`
	Message           *string   `json:"message" bson:"message"`
	Status            Status    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

type CreateInput struct {
	StudentName       string  `json:"student_name" validate:"required"`
	ParentName        string  `json:"parent_name" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             string  `json:"phone" validate:"required"`
	Age               *int    `json:"age" validate:"required,gte=0"`
	LessonType        string  `json:"lesson_type" validate:"required"`
	PreferredSchedule string  `json:"preferred_schedule" validate:"required"`
	Message           *string `json:"message"`
}

type StatusInput struct {
	Status Status `json:"status" validate:"required,enum"`
}

func New(id string, in CreateInput, now time.Time) *Registration {
	r := &Registration{
		ID:                id,
		StudentName:       in.StudentName,
		ParentName:        in.ParentName,
		Email:             validate.Email(in.Email),
		Phone:             in.Phone,
		LessonType:        in.LessonType,
		PreferredSchedule: in.PreferredSchedule,
		Message:           in.Message,
		Status:            StatusPending,
		CreatedAt:         isotime.Normalize(now),
	}
	if in.Age != nil {
		r.Age = *in.Age
	}
	return r
}
