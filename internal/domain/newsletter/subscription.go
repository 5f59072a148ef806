package newsletter

import (
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

var (
	ErrNotFound = errors.New("newsletter: subscription not found")
	// ErrAlreadySubscribed is returned by Repository.Insert when the email is taken.
	ErrAlreadySubscribed = errors.New("newsletter: email already subscribed")
)

// Subscription is unique per email address.
type Subscription struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
}

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

func New(id string, in SubscribeInput, now time.Time) *Subscription {
	return &Subscription{
		ID:           id,
		Email:        validate.Email(in.Email),
		SubscribedAt: isotime.Normalize(now),
		IsActive:     true,
	}
}
