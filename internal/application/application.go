package application

import (
	"context"
	"errors"
	"time"
)

// ErrNoFieldsToUpdate is returned by partial updates that carry no effective field.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

type UseCase[C any, R any] interface {
	Execute(ctx context.Context, cmd C) (R, error)
}

type IDGenerator interface {
	NewID() string
}

// Clock returns the creation time stamped on new entities.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time { return time.Now().UTC() }
