package usecases

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/repository/mocks"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRepositoryUsecase(repoStore *mocks.RepositoryStore, issueStore *mocks.IssueStore, prStore *mocks.PullRequestStore, commitStore *mocks.CommitStore) RepositoryUsecase {
	return NewRepositoryUsecase(repoStore, issueStore, prStore, commitStore, testLogger())
}

func TestRepositoryUsecase_Create_RequiresAuthentication(t *testing.T) {
	uc := newRepositoryUsecase(new(mocks.RepositoryStore), new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))

	_, err := uc.Create(context.TODO(), nil, dtos.CreateRepositoryInput{Name: "demo"})

	assert.ErrorIs(t, err, errcodes.ErrUnauthenticated)
}

func TestRepositoryUsecase_Create_AssignsSlugAndOwner(t *testing.T) {
	repoStore := new(mocks.RepositoryStore)
	repoStore.On("SlugTaken", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	repoStore.On("CreateRepository", mock.Anything, mock.AnythingOfType("*domain.Repository")).Return(nil)

	uc := newRepositoryUsecase(repoStore, new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))
	actor := &domain.User{ID: 7, Name: "Ada"}

	repo, err := uc.Create(context.TODO(), actor, dtos.CreateRepositoryInput{Name: "My Demo Repo"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), repo.UserID)
	assert.True(t, strings.HasPrefix(repo.Slug, "my-demo-repo-"), "slug %q should derive from the name", repo.Slug)
	assert.Equal(t, "main", repo.DefaultBranch)
	repoStore.AssertExpectations(t)
}

func TestRepositoryUsecase_Create_RejectsMissingName(t *testing.T) {
	uc := newRepositoryUsecase(new(mocks.RepositoryStore), new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))

	_, err := uc.Create(context.TODO(), &domain.User{ID: 1}, dtos.CreateRepositoryInput{})

	verr, ok := errcodes.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "name")
}

func TestRepositoryUsecase_Get_PrivateRepositoryLooksMissing(t *testing.T) {
	repoStore := new(mocks.RepositoryStore)
	repoStore.On("RepositoryBySlug", mock.Anything, "secret-1234").
		Return(&domain.Repository{ID: 3, Slug: "secret-1234", UserID: 1, IsPrivate: true}, nil)

	uc := newRepositoryUsecase(repoStore, new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))

	// Anonymous actor and a non-owner both get not-found, the same outcome
	// as a slug that does not exist.
	_, err := uc.Get(context.TODO(), nil, "secret-1234")
	assert.ErrorIs(t, err, errcodes.ErrNotFound)

	_, err = uc.Get(context.TODO(), &domain.User{ID: 2}, "secret-1234")
	assert.ErrorIs(t, err, errcodes.ErrNotFound)
}

func TestRepositoryUsecase_Get_BuildsDetail(t *testing.T) {
	repoStore := new(mocks.RepositoryStore)
	issueStore := new(mocks.IssueStore)
	prStore := new(mocks.PullRequestStore)
	commitStore := new(mocks.CommitStore)

	repo := &domain.Repository{ID: 3, Slug: "demo-1234", UserID: 1}
	repoStore.On("RepositoryBySlug", mock.Anything, "demo-1234").Return(repo, nil)
	commitStore.On("RecentCommitsByRepository", mock.Anything, uint(3), 10).
		Return([]domain.Commit{{ID: 9, Hash: "abc"}}, nil)
	issueStore.On("CountIssues", mock.Anything, uint(3), (*domain.IssueStatus)(nil)).Return(int64(4), nil)
	issueStore.On("CountIssues", mock.Anything, uint(3), mock.AnythingOfType("*domain.IssueStatus")).Return(int64(2), nil)
	prStore.On("CountPullRequests", mock.Anything, uint(3), (*domain.PullRequestStatus)(nil)).Return(int64(3), nil)
	prStore.On("CountPullRequests", mock.Anything, uint(3), mock.AnythingOfType("*domain.PullRequestStatus")).Return(int64(1), nil)

	uc := newRepositoryUsecase(repoStore, issueStore, prStore, commitStore)

	detail, err := uc.Get(context.TODO(), nil, "demo-1234")

	require.NoError(t, err)
	assert.Equal(t, int64(4), detail.Counts.Issues)
	assert.Equal(t, int64(2), detail.Counts.OpenIssues)
	assert.Equal(t, int64(3), detail.Counts.PullRequests)
	assert.Equal(t, int64(1), detail.Counts.OpenPullRequests)
	assert.Len(t, detail.RecentCommits, 1)
}

func TestRepositoryUsecase_Update_NonOwnerForbidden(t *testing.T) {
	repoStore := new(mocks.RepositoryStore)
	repoStore.On("RepositoryBySlug", mock.Anything, "demo-1234").
		Return(&domain.Repository{ID: 3, Slug: "demo-1234", UserID: 1}, nil)

	uc := newRepositoryUsecase(repoStore, new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))

	input := dtos.UpdateRepositoryInput{Name: "demo", DefaultBranch: "main"}
	_, err := uc.Update(context.TODO(), &domain.User{ID: 2}, "demo-1234", input)

	assert.ErrorIs(t, err, errcodes.ErrUnauthorized)
}

func TestRepositoryUsecase_Delete_OwnerOnly(t *testing.T) {
	repoStore := new(mocks.RepositoryStore)
	repoStore.On("RepositoryBySlug", mock.Anything, "demo-1234").
		Return(&domain.Repository{ID: 3, Slug: "demo-1234", UserID: 1}, nil)
	repoStore.On("DeleteRepository", mock.Anything, uint(3)).Return(nil)

	uc := newRepositoryUsecase(repoStore, new(mocks.IssueStore), new(mocks.PullRequestStore), new(mocks.CommitStore))

	err := uc.Delete(context.TODO(), &domain.User{ID: 2}, "demo-1234")
	assert.ErrorIs(t, err, errcodes.ErrUnauthorized)

	err = uc.Delete(context.TODO(), &domain.User{ID: 1}, "demo-1234")
	assert.NoError(t, err)
	repoStore.AssertCalled(t, "DeleteRepository", mock.Anything, uint(3))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-demo-repo", slugify("My Demo Repo"))
	assert.Equal(t, "hello-world-2", slugify("  Hello,  World 2! "))
	assert.Equal(t, "repository", slugify("!!!"))
}
