package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/repository"
	"github.com/wimdy/wimdy/pkg/errcodes"
	"github.com/wimdy/wimdy/pkg/validation"
)

// PullRequestsPerPage is the fixed page size of a repository's pull
// request index.
const PullRequestsPerPage = 20

// PullRequestUsecase covers the pull request CRUD surface and its
// lifecycle rules.
type PullRequestUsecase interface {
	List(ctx context.Context, actor *domain.User, slug string, page int) (*dtos.PullRequestList, error)
	Get(ctx context.Context, actor *domain.User, slug string, id uint) (*domain.PullRequest, error)
	Create(ctx context.Context, actor *domain.User, slug string, input dtos.CreatePullRequestInput) (*domain.PullRequest, error)
	Update(ctx context.Context, actor *domain.User, slug string, id uint, input dtos.UpdatePullRequestInput) (*domain.PullRequest, error)
	Delete(ctx context.Context, actor *domain.User, slug string, id uint) error
}

type pullRequestUsecase struct {
	repoStore repository.RepositoryStore
	prStore   repository.PullRequestStore
	logger    *slog.Logger
}

// NewPullRequestUsecase wires the pull request usecase to its stores.
func NewPullRequestUsecase(repoStore repository.RepositoryStore, prStore repository.PullRequestStore, logger *slog.Logger) PullRequestUsecase {
	return &pullRequestUsecase{repoStore: repoStore, prStore: prStore, logger: logger}
}

func (uc *pullRequestUsecase) List(ctx context.Context, actor *domain.User, slug string, page int) (*dtos.PullRequestList, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}

	prs, total, err := uc.prStore.PullRequestsByRepository(ctx, repo.ID, page, PullRequestsPerPage)
	if err != nil {
		return nil, err
	}

	return &dtos.PullRequestList{
		PullRequests: prs,
		PageInfo:     dtos.NewPagingInfo(page, PullRequestsPerPage, total),
	}, nil
}

func (uc *pullRequestUsecase) Get(ctx context.Context, actor *domain.User, slug string, id uint) (*domain.PullRequest, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	return uc.prStore.PullRequestByID(ctx, repo.ID, id)
}

// Create opens a pull request against any repository the actor can read.
// New pull requests are always open and carry no merge fields.
func (uc *pullRequestUsecase) Create(ctx context.Context, actor *domain.User, slug string, input dtos.CreatePullRequestInput) (*domain.PullRequest, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.SourceBranch == input.TargetBranch {
		return nil, errcodes.NewValidationError("target_branch", "must differ from source branch")
	}

	pr := &domain.PullRequest{
		Title:        input.Title,
		Description:  input.Description,
		RepositoryID: repo.ID,
		AuthorID:     actor.ID,
		SourceBranch: input.SourceBranch,
		TargetBranch: input.TargetBranch,
		Status:       domain.PullRequestOpen,
		IsDraft:      input.IsDraft,
	}

	if err := uc.prStore.CreatePullRequest(ctx, pr); err != nil {
		uc.logger.Error("failed to create pull request", "error", err, "repository", slug)
		return nil, err
	}

	uc.logger.Info("pull request created", "pull_request_id", pr.ID, "repository", slug)
	pr.Author = *actor
	return pr, nil
}

// Update mutates a pull request's attributes. Only the author may edit.
// Status changes are checked against the transition table: merged is
// terminal, and a closed pull request must be reopened before it can be
// merged. Merging stamps merged_at and records the acting user.
func (uc *pullRequestUsecase) Update(ctx context.Context, actor *domain.User, slug string, id uint, input dtos.UpdatePullRequestInput) (*domain.PullRequest, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	pr, err := uc.prStore.PullRequestByID(ctx, repo.ID, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.ID != pr.AuthorID {
		return nil, errcodes.ErrUnauthorized
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.SourceBranch == input.TargetBranch {
		return nil, errcodes.NewValidationError("target_branch", "must differ from source branch")
	}

	next := domain.PullRequestStatus(input.Status)
	if !pr.Status.CanTransitionTo(next) {
		return nil, errcodes.NewValidationError("status",
			fmt.Sprintf("cannot transition from %s to %s", pr.Status, next))
	}
	if next == domain.PullRequestMerged && pr.Status != domain.PullRequestMerged {
		now := time.Now()
		mergerID := actor.ID
		pr.MergedAt = &now
		pr.MergedBy = &mergerID
		pr.Merger = actor
	}
	pr.Status = next

	pr.Title = input.Title
	pr.Description = input.Description
	pr.SourceBranch = input.SourceBranch
	pr.TargetBranch = input.TargetBranch
	pr.IsDraft = input.IsDraft

	if err := uc.prStore.UpdatePullRequest(ctx, pr); err != nil {
		uc.logger.Error("failed to update pull request", "error", err, "pull_request_id", id)
		return nil, err
	}
	return pr, nil
}

func (uc *pullRequestUsecase) Delete(ctx context.Context, actor *domain.User, slug string, id uint) error {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return err
	}
	pr, err := uc.prStore.PullRequestByID(ctx, repo.ID, id)
	if err != nil {
		return err
	}
	if actor == nil || actor.ID != pr.AuthorID {
		return errcodes.ErrUnauthorized
	}

	if err := uc.prStore.DeletePullRequest(ctx, pr.ID); err != nil {
		uc.logger.Error("failed to delete pull request", "error", err, "pull_request_id", id)
		return err
	}
	return nil
}
