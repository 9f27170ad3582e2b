package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/repository"
	"github.com/wimdy/wimdy/pkg/errcodes"
	"github.com/wimdy/wimdy/pkg/validation"
)

const (
	// RepositoriesPerPage is the fixed page size of the public index.
	RepositoriesPerPage = 12

	repositoryDetailCommits = 10
	slugAttempts            = 5
)

// RepositoryUsecase covers the repository CRUD surface with its
// visibility and ownership rules.
type RepositoryUsecase interface {
	List(ctx context.Context, actor *domain.User, page int) (*dtos.RepositoryList, error)
	Get(ctx context.Context, actor *domain.User, slug string) (*dtos.RepositoryDetail, error)
	Create(ctx context.Context, actor *domain.User, input dtos.CreateRepositoryInput) (*domain.Repository, error)
	Update(ctx context.Context, actor *domain.User, slug string, input dtos.UpdateRepositoryInput) (*domain.Repository, error)
	Delete(ctx context.Context, actor *domain.User, slug string) error
}

type repositoryUsecase struct {
	repoStore   repository.RepositoryStore
	issueStore  repository.IssueStore
	prStore     repository.PullRequestStore
	commitStore repository.CommitStore
	logger      *slog.Logger
}

// NewRepositoryUsecase wires the repository usecase to its stores.
func NewRepositoryUsecase(
	repoStore repository.RepositoryStore,
	issueStore repository.IssueStore,
	prStore repository.PullRequestStore,
	commitStore repository.CommitStore,
	logger *slog.Logger,
) RepositoryUsecase {
	return &repositoryUsecase{
		repoStore:   repoStore,
		issueStore:  issueStore,
		prStore:     prStore,
		commitStore: commitStore,
		logger:      logger,
	}
}

// List returns the repositories the actor may read, newest first. Anonymous
// visitors see public repositories only; a signed-in actor additionally
// sees their own private ones.
func (uc *repositoryUsecase) List(ctx context.Context, actor *domain.User, page int) (*dtos.RepositoryList, error) {
	var viewerID *uint
	if actor != nil {
		viewerID = &actor.ID
	}

	repos, total, err := uc.repoStore.VisibleRepositories(ctx, viewerID, page, RepositoriesPerPage)
	if err != nil {
		return nil, err
	}

	return &dtos.RepositoryList{
		Repositories: repos,
		PageInfo:     dtos.NewPagingInfo(page, RepositoriesPerPage, total),
	}, nil
}

// Get returns the repository page: the entity, its ten newest commits and
// its aggregate counts.
func (uc *repositoryUsecase) Get(ctx context.Context, actor *domain.User, slug string) (*dtos.RepositoryDetail, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}

	commits, err := uc.commitStore.RecentCommitsByRepository(ctx, repo.ID, repositoryDetailCommits)
	if err != nil {
		return nil, err
	}

	counts, err := uc.repositoryCounts(ctx, repo.ID)
	if err != nil {
		return nil, err
	}

	return &dtos.RepositoryDetail{
		Repository:    *repo,
		RecentCommits: commits,
		Counts:        counts,
	}, nil
}

func (uc *repositoryUsecase) repositoryCounts(ctx context.Context, repoID uint) (dtos.RepositoryCounts, error) {
	var counts dtos.RepositoryCounts
	var err error

	if counts.Issues, err = uc.issueStore.CountIssues(ctx, repoID, nil); err != nil {
		return counts, err
	}
	openIssue := domain.IssueOpen
	if counts.OpenIssues, err = uc.issueStore.CountIssues(ctx, repoID, &openIssue); err != nil {
		return counts, err
	}
	if counts.PullRequests, err = uc.prStore.CountPullRequests(ctx, repoID, nil); err != nil {
		return counts, err
	}
	openPR := domain.PullRequestOpen
	if counts.OpenPullRequests, err = uc.prStore.CountPullRequests(ctx, repoID, &openPR); err != nil {
		return counts, err
	}
	return counts, nil
}

func (uc *repositoryUsecase) Create(ctx context.Context, actor *domain.User, input dtos.CreateRepositoryInput) (*domain.Repository, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	branch := input.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	slug, err := uc.newSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	repo := &domain.Repository{
		Name:          input.Name,
		Slug:          slug,
		Description:   input.Description,
		UserID:        actor.ID,
		IsPrivate:     input.IsPrivate,
		IsFork:        input.IsFork,
		Language:      input.Language,
		DefaultBranch: branch,
	}

	if err := uc.repoStore.CreateRepository(ctx, repo); err != nil {
		uc.logger.Error("failed to create repository", "error", err, "slug", slug)
		return nil, err
	}

	uc.logger.Info("repository created", "slug", repo.Slug, "owner_id", actor.ID)
	repo.Owner = *actor
	return repo, nil
}

func (uc *repositoryUsecase) Update(ctx context.Context, actor *domain.User, slug string, input dtos.UpdateRepositoryInput) (*domain.Repository, error) {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return nil, err
	}
	if !repo.OwnedBy(actor) {
		return nil, errcodes.ErrUnauthorized
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	repo.Name = input.Name
	repo.Description = input.Description
	repo.IsPrivate = input.IsPrivate
	repo.Language = input.Language
	repo.DefaultBranch = input.DefaultBranch

	if err := uc.repoStore.UpdateRepository(ctx, repo); err != nil {
		uc.logger.Error("failed to update repository", "error", err, "slug", slug)
		return nil, err
	}
	return repo, nil
}

func (uc *repositoryUsecase) Delete(ctx context.Context, actor *domain.User, slug string) error {
	repo, err := visibleRepository(ctx, uc.repoStore, actor, slug)
	if err != nil {
		return err
	}
	if !repo.OwnedBy(actor) {
		return errcodes.ErrUnauthorized
	}

	if err := uc.repoStore.DeleteRepository(ctx, repo.ID); err != nil {
		uc.logger.Error("failed to delete repository", "error", err, "slug", slug)
		return err
	}

	uc.logger.Info("repository deleted", "slug", slug, "owner_id", repo.UserID)
	return nil
}

// newSlug derives a unique slug from the repository name plus a random
// four-digit disambiguator, retrying on the unlikely collision.
func (uc *repositoryUsecase) newSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	for i := 0; i < slugAttempts; i++ {
		slug := fmt.Sprintf("%s-%d", base, 1000+rand.Intn(9000))
		taken, err := uc.repoStore.SlugTaken(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
	}
	return "", errcodes.NewValidationError("name", "could not derive a unique slug")
}

// slugify lowercases the name and squeezes every non-alphanumeric run into
// a single hyphen.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "repository"
	}
	return slug
}
