package domain

// IssueStatus is the lifecycle state of an issue.
type IssueStatus string

const (
	IssueOpen   IssueStatus = "open"
	IssueClosed IssueStatus = "closed"
)

// Valid reports whether s is a known issue status.
func (s IssueStatus) Valid() bool {
	switch s {
	case IssueOpen, IssueClosed:
		return true
	}
	return false
}

// Priority is the triage priority of an issue.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// PullRequestStatus is the lifecycle state of a pull request.
type PullRequestStatus string

const (
	PullRequestOpen   PullRequestStatus = "open"
	PullRequestMerged PullRequestStatus = "merged"
	PullRequestClosed PullRequestStatus = "closed"
)

// Valid reports whether s is a known pull request status.
func (s PullRequestStatus) Valid() bool {
	switch s {
	case PullRequestOpen, PullRequestMerged, PullRequestClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. Staying in the same state is always allowed. Merged is
// terminal, and a closed pull request cannot be merged without being
// reopened first.
func (s PullRequestStatus) CanTransitionTo(next PullRequestStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PullRequestOpen:
		return next == PullRequestMerged || next == PullRequestClosed
	case PullRequestClosed:
		return next == PullRequestOpen
	case PullRequestMerged:
		return false
	}
	return false
}
