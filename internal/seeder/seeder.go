// Package seeder fills an empty database with sample activity so the feeds
// have something to show on a fresh install.
package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wimdy/wimdy/internal/domain"
)

var (
	languages  = []string{"Go", "TypeScript", "Rust", "Python", "Ruby"}
	priorities = []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical}
	labelPool  = []string{"bug", "enhancement", "documentation", "help wanted", "good first issue"}
)

// SeedDatabase populates sample users, repositories, commits, issues and
// pull requests if the repositories table is empty.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Repository{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]domain.User, 0, 4)
		for i, name := range []string{"Ada Park", "Liam Osei", "Mina Sato", "Demo Developer"} {
			user := domain.User{
				Name:  name,
				Email: fmt.Sprintf("user%d@wimdy.dev", i+1),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			users = append(users, user)
		}

		demo := users[len(users)-1]
		repos := []domain.Repository{
			{Name: "awesome-framework", Description: "A modern, fast, and secure web framework", UserID: users[0].ID, Language: "Go", StarsCount: 128, ForksCount: 19, DefaultBranch: "main"},
			{Name: "cool-library", Description: "Lightweight utility library", UserID: users[1].ID, Language: "TypeScript", StarsCount: 54, ForksCount: 6, DefaultBranch: "main"},
			{Name: "super-app", Description: "Full-stack application with modern architecture", UserID: users[2].ID, Language: "Rust", StarsCount: 77, ForksCount: 11, DefaultBranch: "main"},
			{Name: "secret-project", Description: "Internal experiments", UserID: demo.ID, IsPrivate: true, Language: "Go", DefaultBranch: "main"},
			{Name: "wimdy-clone", Description: "A source hosting platform clone", UserID: demo.ID, Language: "Go", StarsCount: 42, ForksCount: 7, DefaultBranch: "main"},
		}
		for i := range repos {
			repos[i].Slug = fmt.Sprintf("%s-%d", strings.ReplaceAll(repos[i].Name, " ", "-"), 1000+rand.Intn(9000))
			if err := tx.Create(&repos[i]).Error; err != nil {
				return err
			}
		}

		for _, repo := range repos {
			n := 5 + rand.Intn(10)
			for i := 0; i < n; i++ {
				author := users[rand.Intn(len(users))]
				commit := domain.Commit{
					Hash:         strings.ReplaceAll(uuid.NewString(), "-", ""),
					Message:      fmt.Sprintf("Update %s module", repo.Name),
					RepositoryID: repo.ID,
					AuthorID:     author.ID,
					Branch:       repo.DefaultBranch,
					AuthorName:   author.Name,
					AuthorEmail:  author.Email,
					FilesChanged: 1 + rand.Intn(12),
					Additions:    rand.Intn(200),
					Deletions:    rand.Intn(80),
					CommittedAt:  time.Now().Add(-time.Duration(rand.Intn(240)) * time.Hour),
				}
				if err := tx.Create(&commit).Error; err != nil {
					return err
				}
			}
		}

		for _, repo := range repos {
			n := 2 + rand.Intn(4)
			for i := 0; i < n; i++ {
				author := users[rand.Intn(len(users))]
				issue := domain.Issue{
					Title:        fmt.Sprintf("Issue %d in %s", i+1, repo.Name),
					Description:  "Steps to reproduce are attached.",
					RepositoryID: repo.ID,
					AuthorID:     author.ID,
					Status:       domain.IssueOpen,
					Priority:     priorities[rand.Intn(len(priorities))],
					Labels:       domain.NewLabelSet(labelPool[rand.Intn(len(labelPool))]),
				}
				if i%3 == 2 {
					closedAt := time.Now().Add(-time.Duration(rand.Intn(48)) * time.Hour)
					issue.Status = domain.IssueClosed
					issue.ClosedAt = &closedAt
				}
				if err := tx.Create(&issue).Error; err != nil {
					return err
				}
			}
		}

		for _, repo := range repos {
			author := users[rand.Intn(len(users))]
			pr := domain.PullRequest{
				Title:        fmt.Sprintf("Improve %s", repo.Name),
				Description:  "Refactors the hot path.",
				RepositoryID: repo.ID,
				AuthorID:     author.ID,
				SourceBranch: "feature/improvements",
				TargetBranch: repo.DefaultBranch,
				Status:       domain.PullRequestOpen,
				CommitsCount: 1 + rand.Intn(5),
				FilesChanged: 1 + rand.Intn(9),
			}
			if err := tx.Omit("Commits").Create(&pr).Error; err != nil {
				return err
			}

			// Link the repository's newest commit to the pull request.
			var commit domain.Commit
			err := tx.Where("repository_id = ?", repo.ID).
				Order("committed_at DESC, id DESC").
				First(&commit).Error
			if err != nil {
				return err
			}
			link := domain.PullRequestCommit{PullRequestID: pr.ID, CommitID: commit.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		// One merged pull request so the demo repo shows the full lifecycle.
		mergedAt := time.Now().Add(-6 * time.Hour)
		mergerID := users[0].ID
		merged := domain.PullRequest{
			Title:        "Ship the activity feed",
			Description:  "Adds the dashboard aggregation.",
			RepositoryID: repos[len(repos)-1].ID,
			AuthorID:     demo.ID,
			SourceBranch: "feature/feed",
			TargetBranch: "main",
			Status:       domain.PullRequestMerged,
			MergedAt:     &mergedAt,
			MergedBy:     &mergerID,
			CommitsCount: 3,
			FilesChanged: 8,
		}
		return tx.Omit("Commits").Create(&merged).Error
	})
}
