package domain

import (
	"time"
)

// User is an account on the platform. Identity is managed by the external
// session provider; this service only references users as owners, authors,
// assignees and mergers.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Repository is a hosted source repository owned by a single user.
type Repository struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"index:idx_repositories_user_name"`
	Slug          string    `json:"slug" gorm:"uniqueIndex"`
	Description   string    `json:"description"`
	UserID        uint      `json:"user_id" gorm:"index;index:idx_repositories_user_name"`
	IsPrivate     bool      `json:"is_private" gorm:"index"`
	IsFork        bool      `json:"is_fork"`
	Language      string    `json:"language" gorm:"index"`
	StarsCount    int       `json:"stars_count"`
	ForksCount    int       `json:"forks_count"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Owner        User          `json:"owner" gorm:"foreignKey:UserID"`
	Issues       []Issue       `json:"-" gorm:"foreignKey:RepositoryID;constraint:OnDelete:CASCADE"`
	PullRequests []PullRequest `json:"-" gorm:"foreignKey:RepositoryID;constraint:OnDelete:CASCADE"`
	Commits      []Commit      `json:"-" gorm:"foreignKey:RepositoryID;constraint:OnDelete:CASCADE"`
}

// VisibleTo reports whether the repository can be read by the given actor.
// A nil actor is an anonymous visitor.
func (r *Repository) VisibleTo(actor *User) bool {
	if !r.IsPrivate {
		return true
	}
	return actor != nil && actor.ID == r.UserID
}

// OwnedBy reports whether the given actor owns the repository.
func (r *Repository) OwnedBy(actor *User) bool {
	return actor != nil && actor.ID == r.UserID
}

// Issue belongs to exactly one repository.
// Invariant: ClosedAt is non-nil if and only if Status is closed.
type Issue struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	RepositoryID uint        `json:"repository_id" gorm:"index;index:idx_issues_repository_status"`
	AuthorID     uint        `json:"author_id" gorm:"index"`
	AssigneeID   *uint       `json:"assignee_id" gorm:"index"`
	Status       IssueStatus `json:"status" gorm:"index;index:idx_issues_repository_status;default:open"`
	Priority     Priority    `json:"priority" gorm:"default:medium"`
	Labels       LabelSet    `json:"labels" gorm:"type:json"`
	ClosedAt     *time.Time  `json:"closed_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Repository *Repository `json:"repository,omitempty" gorm:"foreignKey:RepositoryID"`
	Author     User        `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Assignee   *User       `json:"assignee" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// PullRequest belongs to exactly one repository.
// Invariant: MergedAt and MergedBy are non-nil if and only if Status is merged.
type PullRequest struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	RepositoryID uint              `json:"repository_id" gorm:"index;index:idx_pull_requests_repository_status"`
	AuthorID     uint              `json:"author_id" gorm:"index"`
	SourceBranch string            `json:"source_branch"`
	TargetBranch string            `json:"target_branch"`
	Status       PullRequestStatus `json:"status" gorm:"index;index:idx_pull_requests_repository_status;default:open"`
	IsDraft      bool              `json:"is_draft"`
	CommitsCount int               `json:"commits_count"`
	FilesChanged int               `json:"files_changed"`
	MergedAt     *time.Time        `json:"merged_at"`
	MergedBy     *uint             `json:"merged_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Repository *Repository `json:"repository,omitempty" gorm:"foreignKey:RepositoryID"`
	Author     User        `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Merger     *User       `json:"merger,omitempty" gorm:"foreignKey:MergedBy;constraint:OnDelete:SET NULL"`
	Commits    []Commit    `json:"commits,omitempty" gorm:"many2many:pull_request_commits"`
}

// Commit is a recorded change in a repository. AuthorName and AuthorEmail
// are snapshots captured at commit time, independent of later user changes.
// CommittedAt is when the change was authored, not when the row was stored.
type Commit struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Hash         string    `json:"hash" gorm:"uniqueIndex"`
	Message      string    `json:"message"`
	RepositoryID uint      `json:"repository_id" gorm:"index;index:idx_commits_repository_branch"`
	AuthorID     uint      `json:"author_id" gorm:"index"`
	Branch       string    `json:"branch" gorm:"index;index:idx_commits_repository_branch"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	FilesChanged int       `json:"files_changed"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	CommittedAt  time.Time `json:"committed_at" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`

	Repository *Repository `json:"repository,omitempty" gorm:"foreignKey:RepositoryID"`
	Author     User        `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// PullRequestCommit is the join row linking commits to pull requests.
// The composite primary key prevents duplicate associations.
type PullRequestCommit struct {
	PullRequestID uint `json:"pull_request_id" gorm:"primaryKey"`
	CommitID      uint `json:"commit_id" gorm:"primaryKey"`
}
