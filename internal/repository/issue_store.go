package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/pkg/errcodes"
)

// IssueStore defines the database operations on issues.
type IssueStore interface {
	CreateIssue(ctx context.Context, issue *domain.Issue) error
	IssueByID(ctx context.Context, repositoryID, id uint) (*domain.Issue, error)
	IssuesByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.Issue, int64, error)
	CountIssues(ctx context.Context, repositoryID uint, status *domain.IssueStatus) (int64, error)
	OpenIssuesForUser(ctx context.Context, userID uint, limit int) ([]domain.Issue, error)
	RecentOpenPublicIssues(ctx context.Context, limit int) ([]domain.Issue, error)
	CountPublicIssues(ctx context.Context) (int64, error)
	UpdateIssue(ctx context.Context, issue *domain.Issue) error
	DeleteIssue(ctx context.Context, id uint) error
}

// GormIssueStore is a GORM-based implementation of IssueStore.
type GormIssueStore struct {
	db *gorm.DB
}

// NewGormIssueStore initializes a new GormIssueStore.
func NewGormIssueStore(db *gorm.DB) IssueStore {
	return &GormIssueStore{db: db}
}

func (s *GormIssueStore) CreateIssue(ctx context.Context, issue *domain.Issue) error {
	return s.db.WithContext(ctx).Create(issue).Error
}

func (s *GormIssueStore) IssueByID(ctx context.Context, repositoryID, id uint) (*domain.Issue, error) {
	var issue domain.Issue
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Assignee").
		Where("repository_id = ?", repositoryID).
		First(&issue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *GormIssueStore) IssuesByRepository(ctx context.Context, repositoryID uint, page, perPage int) ([]domain.Issue, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.Issue{}).Where("repository_id = ?", repositoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := paginate(page, perPage)

	var issues []domain.Issue
	err := query.Preload("Author").Preload("Assignee").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&issues).Error
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

// CountIssues counts a repository's issues, optionally restricted to one
// status.
func (s *GormIssueStore) CountIssues(ctx context.Context, repositoryID uint, status *domain.IssueStatus) (int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.Issue{}).Where("repository_id = ?", repositoryID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// OpenIssuesForUser returns the newest open issues the user authored or is
// assigned to.
func (s *GormIssueStore) OpenIssuesForUser(ctx context.Context, userID uint, limit int) ([]domain.Issue, error) {
	var issues []domain.Issue
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Where("author_id = ? OR assignee_id = ?", userID, userID).
		Where("status = ?", domain.IssueOpen).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&issues).Error
	return issues, err
}

func (s *GormIssueStore) RecentOpenPublicIssues(ctx context.Context, limit int) ([]domain.Issue, error) {
	var issues []domain.Issue
	err := s.db.WithContext(ctx).
		Preload("Repository").Preload("Author").
		Joins("JOIN repositories ON repositories.id = issues.repository_id").
		Where("repositories.is_private = ?", false).
		Where("issues.status = ?", domain.IssueOpen).
		Order("issues.created_at DESC, issues.id DESC").
		Limit(limit).
		Find(&issues).Error
	return issues, err
}

func (s *GormIssueStore) CountPublicIssues(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Issue{}).
		Joins("JOIN repositories ON repositories.id = issues.repository_id").
		Where("repositories.is_private = ?", false).
		Count(&count).Error
	return count, err
}

func (s *GormIssueStore) UpdateIssue(ctx context.Context, issue *domain.Issue) error {
	return s.db.WithContext(ctx).Model(&domain.Issue{}).
		Where("id = ?", issue.ID).
		Select("title", "description", "status", "priority", "labels", "assignee_id", "closed_at").
		Updates(map[string]any{
			"title":       issue.Title,
			"description": issue.Description,
			"status":      issue.Status,
			"priority":    issue.Priority,
			"labels":      issue.Labels,
			"assignee_id": issue.AssigneeID,
			"closed_at":   issue.ClosedAt,
		}).Error
}

func (s *GormIssueStore) DeleteIssue(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&domain.Issue{}, id).Error
}
