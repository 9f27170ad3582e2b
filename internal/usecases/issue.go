package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/repository"
	"github.com/wimdy/wimdy/pkg/errcodes"
	"github.com/wimdy/wimdy/pkg/validation"
)

// IssuesPerPage is the fixed page size of a repository's issue index.
const IssuesPerPage = 20

// IssueUsecase covers the issue CRUD surface and its lifecycle rules.
type IssueUsecase interface {
	List(ctx context.Context, actor *domain.User, slug string, page int) (*dtos.IssueList, error)
	Get(ctx context.Context, actor *domain.User, slug string, id uint) (*domain.Issue, error)
	Create(ctx context.Context, actor *domain.User, slug string, input dtos.CreateIssueInput) (*domain.Issue, error)
	Update(ctx context.Context, actor *domain.User, slug string, id uint, input dtos.UpdateIssueInput) (*domain.Issue, error)
	Delete(ctx context.Context, actor *domain.User, slug string, id uint) error
}

type issueUsecase struct {
	repoStore  repository.RepositoryStore
	issueStore repository.IssueStore
	logger     *slog.Logger
}

// NewIssueUsecase wires the issue usecase to its stores.
func NewIssueUsecase(repoStore repository.RepositoryStore, issueStore repository.IssueStore, logger *slog.Logger) IssueUsecase {
	return &issueUsecase{repoStore: repoStore, issueStore: issueStore, logger: logger}
}

func (uc *issueUsecase) List(ctx context.Context, actor *domain.User, slug string, page int) (*dtos.IssueList, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}

	issues, total, err := uc.issueStore.IssuesByRepository(ctx, repo.ID, page, IssuesPerPage)
	if err != nil {
		return nil, err
	}

	return &dtos.IssueList{
		Issues:   issues,
		PageInfo: dtos.NewPagingInfo(page, IssuesPerPage, total),
	}, nil
}

func (uc *issueUsecase) Get(ctx context.Context, actor *domain.User, slug string, id uint) (*domain.Issue, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	return uc.issueStore.IssueByID(ctx, repo.ID, id)
}

// Create files an issue against any repository the actor can read. New
// issues are always open; a client-supplied status is not even decodable.
func (uc *issueUsecase) Create(ctx context.Context, actor *domain.User, slug string, input dtos.CreateIssueInput) (*domain.Issue, error) {
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

	priority := domain.Priority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	issue := &domain.Issue{
		Title:        input.Title,
		Description:  input.Description,
		RepositoryID: repo.ID,
		AuthorID:     actor.ID,
		AssigneeID:   input.AssigneeID,
		Status:       domain.IssueOpen,
		Priority:     priority,
		Labels:       domain.NewLabelSet(input.Labels...),
	}

	if err := uc.issueStore.CreateIssue(ctx, issue); err != nil {
		uc.logger.Error("failed to create issue", "error", err, "repository", slug)
		return nil, err
	}

	uc.logger.Info("issue created", "issue_id", issue.ID, "repository", slug)
	issue.Author = *actor
	return issue, nil
}

// Update mutates an issue's attributes. Only the author may edit; the
// closed_at timestamp tracks the status transition and nothing else.
func (uc *issueUsecase) Update(ctx context.Context, actor *domain.User, slug string, id uint, input dtos.UpdateIssueInput) (*domain.Issue, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	issue, err := uc.issueStore.IssueByID(ctx, repo.ID, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.ID != issue.AuthorID {
		return nil, errcodes.ErrUnauthorized
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	next := domain.IssueStatus(input.Status)
	if next != issue.Status {
		if next == domain.IssueClosed {
			now := time.Now()
			issue.ClosedAt = &now
		} else {
			issue.ClosedAt = nil
		}
		issue.Status = next
	}

	issue.Title = input.Title
	issue.Description = input.Description
	issue.Priority = domain.Priority(input.Priority)
	issue.Labels = domain.NewLabelSet(input.Labels...)
	issue.AssigneeID = input.AssigneeID

	if err := uc.issueStore.UpdateIssue(ctx, issue); err != nil {
		uc.logger.Error("failed to update issue", "error", err, "issue_id", id)
		return nil, err
	}
	return issue, nil
}

func (uc *issueUsecase) Delete(ctx context.Context, actor *domain.User, slug string, id uint) error {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return err
	}
	issue, err := uc.issueStore.IssueByID(ctx, repo.ID, id)
	if err != nil {
		return err
	}
	if actor == nil || actor.ID != issue.AuthorID {
		return errcodes.ErrUnauthorized
	}

	if err := uc.issueStore.DeleteIssue(ctx, issue.ID); err != nil {
		uc.logger.Error("failed to delete issue", "error", err, "issue_id", id)
		return err
	}
	return nil
}
