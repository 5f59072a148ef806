package contact

import "context"

type Repository interface {
	Insert(ctx context.Context, s *Submission) error
	// List returns every submission, newest first.
	List(ctx context.Context) ([]Submission, error)
}
