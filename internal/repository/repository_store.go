package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// RepositoryStore defines the database operations on repositories.
type RepositoryStore interface {
	CreateRepository(ctx context.Context, repo *domain.Repository) error
	RepositoryBySlug(ctx context.Context, slug string) (*domain.Repository, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	VisibleRepositories(ctx context.Context, viewerID *uint, page, perPage int) ([]domain.Repository, int64, error)
	RepositoriesByOwner(ctx context.Context, userID uint, limit int) ([]domain.Repository, error)
	TopPublicRepositories(ctx context.Context, limit int) ([]domain.Repository, error)
	CountPublicRepositories(ctx context.Context) (int64, error)
	UpdateRepository(ctx context.Context, repo *domain.Repository) error
	DeleteRepository(ctx context.Context, id uint) error
}

// GormRepositoryStore is a GORM-based implementation of RepositoryStore.
type GormRepositoryStore struct {
	db *gorm.DB
}

// NewGormRepositoryStore initializes a new GormRepositoryStore.
func NewGormRepositoryStore(db *gorm.DB) RepositoryStore {
	return &GormRepositoryStore{db: db}
}

func (s *GormRepositoryStore) CreateRepository(ctx context.Context, repo *domain.Repository) error {
	return s.db.WithContext(ctx).Create(repo).Error
}

func (s *GormRepositoryStore) RepositoryBySlug(ctx context.Context, slug string) (*domain.Repository, error) {
	var repo domain.Repository
	err := s.db.WithContext(ctx).Preload("Owner").Where("slug = ?", slug).First(&repo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

func (s *GormRepositoryStore) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Repository{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// VisibleRepositories lists repositories the viewer may read, newest first.
// The visibility predicate is a single grouped clause so that composing it
// with pagination or other filters can never widen the result set.
func (s *GormRepositoryStore) VisibleRepositories(ctx context.Context, viewerID *uint, page, perPage int) ([]domain.Repository, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.Repository{})
	if viewerID != nil {
		query = query.Where("is_private = ? OR user_id = ?", false, *viewerID)
	} else {
		query = query.Where("is_private = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, perPage)

	var repos []domain.Repository
	err := query.Preload("Owner").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&repos).Error
	if err != nil {
		return nil, 0, err
	}
	return repos, total, nil
}

func (s *GormRepositoryStore) RepositoriesByOwner(ctx context.Context, userID uint, limit int) ([]domain.Repository, error) {
	var repos []domain.Repository
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&repos).Error
	return repos, err
}

func (s *GormRepositoryStore) TopPublicRepositories(ctx context.Context, limit int) ([]domain.Repository, error) {
	var repos []domain.Repository
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("is_private = ?", false).
		Order("stars_count DESC, id DESC").
		Limit(limit).
		Find(&repos).Error
	return repos, err
}

func (s *GormRepositoryStore) CountPublicRepositories(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Repository{}).
		Where("is_private = ?", false).
		Count(&count).Error
	return count, err
}

// UpdateRepository persists the mutable attributes. The slug is assigned at
// creation and never rewritten here.
func (s *GormRepositoryStore) UpdateRepository(ctx context.Context, repo *domain.Repository) error {
	return s.db.WithContext(ctx).Model(&domain.Repository{}).
		Where("id = ?", repo.ID).
		Select("name", "description", "is_private", "language", "default_branch").
		Updates(map[string]any{
			"name":           repo.Name,
			"description":    repo.Description,
			"is_private":     repo.IsPrivate,
			"language":       repo.Language,
			"default_branch": repo.DefaultBranch,
		}).Error
}

// DeleteRepository removes the repository and all of its issues, pull
// requests, commits and pull-request/commit links in one transaction.
func (s *GormRepositoryStore) DeleteRepository(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prIDs := tx.Model(&domain.PullRequest{}).Select("id").Where("repository_id = ?", id)
		if err := tx.Where("pull_request_id IN (?)", prIDs).Delete(&domain.PullRequestCommit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("repository_id = ?", id).Delete(&domain.PullRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("repository_id = ?", id).Delete(&domain.Issue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("repository_id = ?", id).Delete(&domain.Commit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Repository{}, id).Error
	})
}
