package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// CommitStore defines the database operations on commits.
type CommitStore interface {
	CreateCommit(ctx context.Context, commit *domain.Commit) error
	CommitByHash(ctx context.Context, hash string) (*domain.Commit, error)
	RecentCommitsByRepository(ctx context.Context, repositoryID uint, limit int) ([]domain.Commit, error)
	RecentCommitsByRepositories(ctx context.Context, repositoryIDs []uint, limit int) ([]domain.Commit, error)
	RecentPublicCommits(ctx context.Context, limit int) ([]domain.Commit, error)
	CountPublicCommits(ctx context.Context) (int64, error)
}

// GormCommitStore is a GORM-based implementation of CommitStore.
type GormCommitStore struct {
	db *gorm.DB
}

// NewGormCommitStore initializes a new GormCommitStore.
func NewGormCommitStore(db *gorm.DB) CommitStore {
	return &GormCommitStore{db: db}
}

func (s *GormCommitStore) CreateCommit(ctx context.Context, commit *domain.Commit) error {
	return s.db.WithContext(ctx).Create(commit).Error
}

func (s *GormCommitStore) CommitByHash(ctx context.Context, hash string) (*domain.Commit, error) {
	var commit domain.Commit
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&commit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &commit, nil
}

func (s *GormCommitStore) RecentCommitsByRepository(ctx context.Context, repositoryID uint, limit int) ([]domain.Commit, error) {
	var commits []domain.Commit
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("repository_id = ?", repositoryID).
		Order("committed_at DESC, id DESC").
		Limit(limit).
		Find(&commits).Error
	return commits, err
}

// RecentCommitsByRepositories returns the newest commits across the given
// repositories, ordered by when they were authored.
func (s *GormCommitStore) RecentCommitsByRepositories(ctx context.Context, repositoryIDs []uint, limit int) ([]domain.Commit, error) {
	if len(repositoryIDs) == 0 {
		return nil, nil
	}
	var commits []domain.Commit
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Where("repository_id IN ?", repositoryIDs).
		Order("committed_at DESC, id DESC").
		Limit(limit).
		Find(&commits).Error
	return commits, err
}

func (s *GormCommitStore) RecentPublicCommits(ctx context.Context, limit int) ([]domain.Commit, error) {
	var commits []domain.Commit
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Joins("JOIN repositories ON repositories.id = commits.repository_id").
		Where("repositories.is_private = ?", false).
		Order("commits.committed_at DESC, commits.id DESC").
		Limit(limit).
		Find(&commits).Error
	return commits, err
}

func (s *GormCommitStore) CountPublicCommits(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Commit{}).
		Joins("JOIN repositories ON repositories.id = commits.repository_id").
		Where("repositories.is_private = ?", false).
		Count(&count).Error
	return count, err
}
