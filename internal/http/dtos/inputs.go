package dtos

// Typed input structs, one per operation. Handlers decode JSON into these
// and nothing else reaches the usecase layer, so unexpected fields can
// never be mass-assigned.

// CreateRepositoryInput creates a repository for the acting user.
type CreateRepositoryInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	Description   string `json:"description"`
	IsPrivate     bool   `json:"is_private"`
	IsFork        bool   `json:"is_fork"`
	Language      string `json:"language" validate:"max=100"`
	DefaultBranch string `json:"default_branch" validate:"max=100"`
}

// UpdateRepositoryInput mutates a repository's settings. The slug is not
// part of the input; it never changes after creation.
type UpdateRepositoryInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	Description   string `json:"description"`
	IsPrivate     bool   `json:"is_private"`
	Language      string `json:"language" validate:"max=100"`
	DefaultBranch string `json:"default_branch" validate:"required,max=100"`
}

// CreateIssueInput files an issue. Status is not accepted: new issues are
// always open.
type CreateIssueInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Labels      []string `json:"labels"`
	AssigneeID  *uint    `json:"assignee_id"`
}

// UpdateIssueInput carries the full mutable attribute set of an issue,
// including its status; the lifecycle rules are enforced in the usecase.
type UpdateIssueInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Status      string   `json:"status" validate:"required,oneof=open closed"`
	Priority    string   `json:"priority" validate:"required,oneof=low medium high critical"`
	Labels      []string `json:"labels"`
	AssigneeID  *uint    `json:"assignee_id"`
}

// CreatePullRequestInput opens a pull request. Status is not accepted: new
// pull requests are always open.
type CreatePullRequestInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	SourceBranch string `json:"source_branch" validate:"required,max=255"`
	TargetBranch string `json:"target_branch" validate:"required,max=255"`
	IsDraft      bool   `json:"is_draft"`
}

// UpdatePullRequestInput carries the full mutable attribute set of a pull
// request. Merge timestamps are never client-supplied; they are derived
// from the status transition and the acting user.
type UpdatePullRequestInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	SourceBranch string `json:"source_branch" validate:"required,max=255"`
	TargetBranch string `json:"target_branch" validate:"required,max=255"`
	Status       string `json:"status" validate:"required,oneof=open merged closed"`
	IsDraft      bool   `json:"is_draft"`
}
