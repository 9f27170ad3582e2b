package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// PullRequestStore defines the database operations on pull requests.
type PullRequestStore interface {
	CreatePullRequest(ctx context.Context, pr *domain.PullRequest) error
	PullRequestByID(ctx context.Context, repositoryID, id uint) (*domain.PullRequest, error)
	PullRequestsByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.PullRequest, int64, error)
	CountPullRequests(ctx context.Context, repositoryID uint, status *domain.PullRequestStatus) (int64, error)
	OpenPullRequestsByAuthor(ctx context.Context, userID uint, limit int) ([]domain.PullRequest, error)
	RecentOpenPublicPullRequests(ctx context.Context, limit int) ([]domain.PullRequest, error)
	CountPublicPullRequests(ctx context.Context) (int64, error)
	UpdatePullRequest(ctx context.Context, pr *domain.PullRequest) error
	DeletePullRequest(ctx context.Context, id uint) error
	LinkCommit(ctx context.Context, pullRequestID, commitID uint) error
}

// GormPullRequestStore is a GORM-based implementation of PullRequestStore.
type GormPullRequestStore struct {
	db *gorm.DB
}

// NewGormPullRequestStore initializes a new GormPullRequestStore.
func NewGormPullRequestStore(db *gorm.DB) PullRequestStore {
	return &GormPullRequestStore{db: db}
}

func (s *GormPullRequestStore) CreatePullRequest(ctx context.Context, pr *domain.PullRequest) error {
	return s.db.WithContext(ctx).Omit("Commits").Create(pr).Error
}

func (s *GormPullRequestStore) PullRequestByID(ctx context.Context, repositoryID, id uint) (*domain.PullRequest, error) {
	var pr domain.PullRequest
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Merger").
		Preload("Commits", func(db *gorm.DB) *gorm.DB {
			return db.Order("commits.committed_at DESC, commits.id DESC")
		}).
		Where("repository_id = ?", repositoryID).
		First(&pr, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (s *GormPullRequestStore) PullRequestsByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.PullRequest, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.PullRequest{}).Where("repository_id = ?", repositoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, perPage)

	var prs []domain.PullRequest
	err := query.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&prs).Error
	if err != nil {
		return nil, 0, err
	}
	return prs, total, nil
}

// CountPullRequests counts a repository's pull requests, optionally
// restricted to one status.
func (s *GormPullRequestStore) CountPullRequests(ctx context.Context, repositoryID uint, status *domain.PullRequestStatus) (int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.PullRequest{}).Where("repository_id = ?", repositoryID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (s *GormPullRequestStore) OpenPullRequestsByAuthor(ctx context.Context, userID uint, limit int) ([]domain.PullRequest, error) {
	var prs []domain.PullRequest
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Where("author_id = ?", userID).
		Where("status = ?", domain.PullRequestOpen).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&prs).Error
	return prs, err
}

func (s *GormPullRequestStore) RecentOpenPublicPullRequests(ctx context.Context, limit int) ([]domain.PullRequest, error) {
	var prs []domain.PullRequest
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Joins("JOIN repositories ON repositories.id = pull_requests.repository_id").
		Where("repositories.is_private = ?", false).
		Where("pull_requests.status = ?", domain.PullRequestOpen).
		Order("pull_requests.created_at DESC, pull_requests.id DESC").
		Limit(limit).
		Find(&prs).Error
	return prs, err
}

func (s *GormPullRequestStore) CountPublicPullRequests(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.PullRequest{}).
		Joins("JOIN repositories ON repositories.id = pull_requests.repository_id").
		Where("repositories.is_private = ?", false).
		Count(&count).Error
	return count, err
}

func (s *GormPullRequestStore) UpdatePullRequest(ctx context.Context, pr *domain.PullRequest) error {
	return s.db.WithContext(ctx).Model(&domain.PullRequest{}).
		Where("id = ?", pr.ID).
		Select("title", "description", "source_branch", "target_branch", "status", "is_draft", "merged_at", "merged_by").
		Updates(map[string]any{
			"title":         pr.Title,
			"description":   pr.Description,
			"source_branch": pr.SourceBranch,
			"target_branch": pr.TargetBranch,
			"status":        pr.Status,
			"is_draft":      pr.IsDraft,
			"merged_at":     pr.MergedAt,
			"merged_by":     pr.MergedBy,
		}).Error
}

func (s *GormPullRequestStore) DeletePullRequest(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pull_request_id = ?", id).Delete(&domain.PullRequestCommit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.PullRequest{}, id).Error
	})
}

// LinkCommit associates a commit with a pull request. Linking the same pair
// twice is a no-op.
func (s *GormPullRequestStore) LinkCommit(ctx context.Context, pullRequestID, commitID uint) error {
	link := domain.PullRequestCommit{PullRequestID: pullRequestID, CommitID: commitID}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}
