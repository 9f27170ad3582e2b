package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/storage"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRepository(t *testing.T, db *gorm.DB, owner *domain.User, slug string, private bool) *domain.Repository {
	t.Helper()
	repo := &domain.Repository{
		Name:          slug,
		Slug:          slug,
		UserID:        owner.ID,
		IsPrivate:     private,
		DefaultBranch: "main",
	}
	require.NoError(t, db.Create(repo).Error)
	return repo
}

func seedCommit(t *testing.T, db *gorm.DB, repo *domain.Repository, author *domain.User, hash string, at time.Time) *domain.Commit {
	t.Helper()
	commit := &domain.Commit{
		Hash:         hash,
		Message:      "change " + hash,
		RepositoryID: repo.ID,
		AuthorID:     author.ID,
		Branch:       "main",
		AuthorName:   author.Name,
		AuthorEmail:  author.Email,
		CommittedAt:  at,
	}
	require.NoError(t, db.Create(commit).Error)
	return commit
}

func TestGormRepositoryStore_VisibleRepositories(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	other := seedUser(t, db, "grace")
	seedRepository(t, db, owner, "public-one", false)
	private := seedRepository(t, db, owner, "private-one", true)

	store := NewGormRepositoryStore(db)

	repos, total, err := store.VisibleRepositories(context.TODO(), nil, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, repos, 1)
	assert.Equal(t, "public-one", repos[0].Slug)

	repos, total, err = store.VisibleRepositories(context.TODO(), &owner.ID, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, repos, 2)

	repos, total, err = store.VisibleRepositories(context.TODO(), &other.ID, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	for _, repo := range repos {
		assert.NotEqual(t, private.ID, repo.ID)
	}
}

func TestGormRepositoryStore_VisibleRepositories_OrderAndPaging(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		repo := &domain.Repository{
			Name:      fmt.Sprintf("repo-%02d", i),
			Slug:      fmt.Sprintf("repo-%02d", i),
			UserID:    owner.ID,
			CreatedAt: created,
		}
		require.NoError(t, db.Create(repo).Error)
	}

	store := NewGormRepositoryStore(db)

	// Equal created_at everywhere, so ordering falls back to id.
	repos, total, err := store.VisibleRepositories(context.TODO(), nil, 1, 12)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	require.Len(t, repos, 12)
	assert.Equal(t, "repo-14", repos[0].Slug)
	assert.Equal(t, "repo-03", repos[11].Slug)

	repos, _, err = store.VisibleRepositories(context.TODO(), nil, 2, 12)
	require.NoError(t, err)
	require.Len(t, repos, 3)
	assert.Equal(t, "repo-02", repos[0].Slug)
	assert.Equal(t, "repo-00", repos[2].Slug)
}

func TestGormRepositoryStore_RepositoryBySlug(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	seedRepository(t, db, owner, "found-me", false)

	store := NewGormRepositoryStore(db)

	repo, err := store.RepositoryBySlug(context.TODO(), "found-me")
	require.NoError(t, err)
	assert.Equal(t, "ada", repo.Owner.Name)

	_, err = store.RepositoryBySlug(context.TODO(), "no-such-slug")
	assert.ErrorIs(t, err, errcodes.ErrNotFound)
}

func TestGormRepositoryStore_UpdateRepository_KeepsSlug(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	repo := seedRepository(t, db, owner, "stable-slug", false)

	store := NewGormRepositoryStore(db)

	repo.Name = "renamed"
	repo.Slug = "should-not-stick"
	repo.IsPrivate = true
	require.NoError(t, store.UpdateRepository(context.TODO(), repo))

	stored, err := store.RepositoryBySlug(context.TODO(), "stable-slug")
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Name)
	assert.True(t, stored.IsPrivate)
}

func TestGormRepositoryStore_TopPublicRepositories(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")

	for i, stars := range []int{3, 12, 7} {
		repo := seedRepository(t, db, owner, fmt.Sprintf("stars-%d", i), false)
		require.NoError(t, db.Model(repo).Update("stars_count", stars).Error)
	}
	hidden := seedRepository(t, db, owner, "hidden", true)
	require.NoError(t, db.Model(hidden).Update("stars_count", 100).Error)

	store := NewGormRepositoryStore(db)

	repos, err := store.TopPublicRepositories(context.TODO(), 2)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "stars-1", repos[0].Slug)
	assert.Equal(t, "stars-2", repos[1].Slug)
}

func TestGormRepositoryStore_DeleteRepository_Cascades(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	repo := seedRepository(t, db, owner, "doomed", false)
	survivor := seedRepository(t, db, owner, "survivor", false)

	issue := &domain.Issue{Title: "bug", RepositoryID: repo.ID, AuthorID: owner.ID, Status: domain.IssueOpen}
	require.NoError(t, db.Create(issue).Error)
	keptIssue := &domain.Issue{Title: "kept", RepositoryID: survivor.ID, AuthorID: owner.ID, Status: domain.IssueOpen}
	require.NoError(t, db.Create(keptIssue).Error)

	commit := seedCommit(t, db, repo, owner, "aaa111", time.Now())
	pr := &domain.PullRequest{
		Title: "feature", RepositoryID: repo.ID, AuthorID: owner.ID,
		SourceBranch: "feature/x", TargetBranch: "main", Status: domain.PullRequestOpen,
	}
	require.NoError(t, db.Create(pr).Error)

	prStore := NewGormPullRequestStore(db)
	require.NoError(t, prStore.LinkCommit(context.TODO(), pr.ID, commit.ID))

	store := NewGormRepositoryStore(db)
	require.NoError(t, store.DeleteRepository(context.TODO(), repo.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Issue{}).Where("repository_id = ?", repo.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.PullRequest{}).Where("repository_id = ?", repo.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.Commit{}).Where("repository_id = ?", repo.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.PullRequestCommit{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err := store.RepositoryBySlug(context.TODO(), "doomed")
	assert.ErrorIs(t, err, errcodes.ErrNotFound)

	require.NoError(t, db.Model(&domain.Issue{}).Where("repository_id = ?", survivor.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGormIssueStore_CountIssues(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	repo := seedRepository(t, db, owner, "counted", false)

	closedAt := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&domain.Issue{
			Title: fmt.Sprintf("open-%d", i), RepositoryID: repo.ID, AuthorID: owner.ID, Status: domain.IssueOpen,
		}).Error)
	}
	require.NoError(t, db.Create(&domain.Issue{
		Title: "done", RepositoryID: repo.ID, AuthorID: owner.ID, Status: domain.IssueClosed, ClosedAt: &closedAt,
	}).Error)

	store := NewGormIssueStore(db)

	total, err := store.CountIssues(context.TODO(), repo.ID, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	open := domain.IssueOpen
	count, err := store.CountIssues(context.TODO(), repo.ID, &open)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	closed := domain.IssueClosed
	count, err = store.CountIssues(context.TODO(), repo.ID, &closed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGormIssueStore_OpenIssuesForUser_IncludesAssigned(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "ada")
	assignee := seedUser(t, db, "grace")
	repo := seedRepository(t, db, author, "teamwork", false)

	require.NoError(t, db.Create(&domain.Issue{
		Title: "authored", RepositoryID: repo.ID, AuthorID: assignee.ID, Status: domain.IssueOpen,
	}).Error)
	require.NoError(t, db.Create(&domain.Issue{
		Title: "assigned", RepositoryID: repo.ID, AuthorID: author.ID, AssigneeID: &assignee.ID, Status: domain.IssueOpen,
	}).Error)
	closedAt := time.Now()
	require.NoError(t, db.Create(&domain.Issue{
		Title: "closed", RepositoryID: repo.ID, AuthorID: assignee.ID, Status: domain.IssueClosed, ClosedAt: &closedAt,
	}).Error)

	store := NewGormIssueStore(db)

	issues, err := store.OpenIssuesForUser(context.TODO(), assignee.ID, 5)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	titles := []string{issues[0].Title, issues[1].Title}
	assert.ElementsMatch(t, []string{"authored", "assigned"}, titles)
}

func TestGormIssueStore_RecentOpenPublicIssues(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	public := seedRepository(t, db, owner, "open-repo", false)
	private := seedRepository(t, db, owner, "closed-repo", true)

	require.NoError(t, db.Create(&domain.Issue{
		Title: "visible", RepositoryID: public.ID, AuthorID: owner.ID, Status: domain.IssueOpen,
	}).Error)
	require.NoError(t, db.Create(&domain.Issue{
		Title: "hidden", RepositoryID: private.ID, AuthorID: owner.ID, Status: domain.IssueOpen,
	}).Error)
	closedAt := time.Now()
	require.NoError(t, db.Create(&domain.Issue{
		Title: "resolved", RepositoryID: public.ID, AuthorID: owner.ID, Status: domain.IssueClosed, ClosedAt: &closedAt,
	}).Error)

	store := NewGormIssueStore(db)

	issues, err := store.RecentOpenPublicIssues(context.TODO(), 5)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "visible", issues[0].Title)
}

func TestGormPullRequestStore_LinkCommit_DuplicateNoOp(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	repo := seedRepository(t, db, owner, "linked", false)
	commit := seedCommit(t, db, repo, owner, "bbb222", time.Now())

	pr := &domain.PullRequest{
		Title: "feature", RepositoryID: repo.ID, AuthorID: owner.ID,
		SourceBranch: "feature/x", TargetBranch: "main", Status: domain.PullRequestOpen,
	}
	require.NoError(t, db.Create(pr).Error)

	store := NewGormPullRequestStore(db)
	require.NoError(t, store.LinkCommit(context.TODO(), pr.ID, commit.ID))
	require.NoError(t, store.LinkCommit(context.TODO(), pr.ID, commit.ID))

	var count int64
	require.NoError(t, db.Model(&domain.PullRequestCommit{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGormCommitStore_RecentCommitsByRepositories(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	first := seedRepository(t, db, owner, "first", false)
	second := seedRepository(t, db, owner, "second", false)
	ignored := seedRepository(t, db, owner, "ignored", false)

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	seedCommit(t, db, first, owner, "c-old", base)
	seedCommit(t, db, second, owner, "c-new", base.Add(time.Hour))
	seedCommit(t, db, ignored, owner, "c-other", base.Add(2*time.Hour))

	store := NewGormCommitStore(db)

	commits, err := store.RecentCommitsByRepositories(context.TODO(), []uint{first.ID, second.ID}, 10)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "c-new", commits[0].Hash)
	assert.Equal(t, "c-old", commits[1].Hash)

	commits, err = store.RecentCommitsByRepositories(context.TODO(), nil, 10)
	require.NoError(t, err)
	assert.Nil(t, commits)
}

func TestGormCommitStore_RecentPublicCommits(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "ada")
	public := seedRepository(t, db, owner, "shown", false)
	private := seedRepository(t, db, owner, "held-back", true)

	now := time.Now()
	seedCommit(t, db, public, owner, "pub-1", now)
	seedCommit(t, db, private, owner, "prv-1", now.Add(time.Hour))

	store := NewGormCommitStore(db)

	commits, err := store.RecentPublicCommits(context.TODO(), 8)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "pub-1", commits[0].Hash)

	count, err := store.CountPublicCommits(context.TODO())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
