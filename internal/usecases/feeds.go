package usecases

import (
	"context"
	"log/slog"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/repository"
)

// Feed caps. Hard limits, not user-configurable; applied after filtering
// and sorting.
const (
	dashboardRepositories = 5
	dashboardCommits      = 10
	dashboardPullRequests = 5
	dashboardIssues       = 5

	homeRepositories = 6
	homeCommits      = 8
	homePullRequests = 5
	homeIssues       = 5
)

// FeedUsecase computes the aggregated activity views. Everything is
// read-only and computed per request; no counters are maintained.
type FeedUsecase interface {
	Dashboard(ctx context.Context, actor *domain.User) (*dtos.DashboardView, error)
	Home(ctx context.Context) (*dtos.HomeView, error)
}

type feedUsecase struct {
	repoStore   repository.RepositoryStore
	issueStore  repository.IssueStore
	prStore     repository.PullRequestStore
	commitStore repository.CommitStore
	logger      *slog.Logger
}

// NewFeedUsecase wires the feed usecase to its stores.
func NewFeedUsecase(
	repoStore repository.RepositoryStore,
	issueStore repository.IssueStore,
	prStore repository.PullRequestStore,
	commitStore repository.CommitStore,
	logger *slog.Logger,
) FeedUsecase {
	return &feedUsecase{
		repoStore:   repoStore,
		issueStore:  issueStore,
		prStore:     prStore,
		commitStore: commitStore,
		logger:      logger,
	}
}

// Dashboard builds the signed-in feed: the actor's newest repositories, the
// newest commits across those repositories, the actor's open pull requests
// and the open issues they authored or are assigned to.
func (uc *feedUsecase) Dashboard(ctx context.Context, actor *domain.User) (*dtos.DashboardView, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	repos, err := uc.repoStore.RepositoriesByOwner(ctx, actor.ID, dashboardRepositories)
	if err != nil {
		return nil, err
	}

	repoIDs := make([]uint, len(repos))
	for i, repo := range repos {
		repoIDs[i] = repo.ID
	}

	commits, err := uc.commitStore.RecentCommitsByRepositories(ctx, repoIDs, dashboardCommits)
	if err != nil {
		return nil, err
	}

	prs, err := uc.prStore.OpenPullRequestsByAuthor(ctx, actor.ID, dashboardPullRequests)
	if err != nil {
		return nil, err
	}

	issues, err := uc.issueStore.OpenIssuesForUser(ctx, actor.ID, dashboardIssues)
	if err != nil {
		return nil, err
	}

	return &dtos.DashboardView{
		Repositories:  repos,
		RecentCommits: commits,
		PullRequests:  prs,
		Issues:        issues,
	}, nil
}

// Home builds the public landing feed from public repositories only.
func (uc *feedUsecase) Home(ctx context.Context) (*dtos.HomeView, error) {
	trending, err := uc.repoStore.TopPublicRepositories(ctx, homeRepositories)
	if err != nil {
		return nil, err
	}

	commits, err := uc.commitStore.RecentPublicCommits(ctx, homeCommits)
	if err != nil {
		return nil, err
	}

	prs, err := uc.prStore.RecentOpenPublicPullRequests(ctx, homePullRequests)
	if err != nil {
		return nil, err
	}

	issues, err := uc.issueStore.RecentOpenPublicIssues(ctx, homeIssues)
	if err != nil {
		return nil, err
	}

	stats, err := uc.homeStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dtos.HomeView{
		TrendingRepositories: trending,
		RecentCommits:        commits,
		OpenPullRequests:     prs,
		RecentIssues:         issues,
		Stats:                stats,
	}, nil
}

func (uc *feedUsecase) homeStats(ctx context.Context) (dtos.HomeStats, error) {
	var stats dtos.HomeStats
	var err error

	if stats.Repositories, err = uc.repoStore.CountPublicRepositories(ctx); err != nil {
		return stats, err
	}
	if stats.Issues, err = uc.issueStore.CountPublicIssues(ctx); err != nil {
		return stats, err
	}
	if stats.PullRequests, err = uc.prStore.CountPublicPullRequests(ctx); err != nil {
		return stats, err
	}
	if stats.Commits, err = uc.commitStore.CountPublicCommits(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}
