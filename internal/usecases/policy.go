package usecases

import (
	"context"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/repository"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// visibleRepository resolves a slug for the given actor. A private
// repository an actor may not read behaves exactly like a missing one, so
// unauthorized callers cannot probe for existence.
func visibleRepository(ctx context.Context, store repository.RepositoryStore, actor *domain.User, slug string) (*domain.Repository, error) {
	repo, err := store.RepositoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !repo.VisibleTo(actor) {
		return nil, errcodes.ErrNotFound
	}
	return repo, nil
}

// requireActor rejects anonymous callers.
func requireActor(actor *domain.User) error {
	if actor == nil {
		return errcodes.ErrUnauthenticated
	}
	return nil
}
