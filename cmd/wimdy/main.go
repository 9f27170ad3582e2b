package main

import (
	"net/http"
	"os"

	"github.com/wimdy/wimdy/internal/config"
	httpapi "github.com/wimdy/wimdy/internal/http"
	"github.com/wimdy/wimdy/internal/http/handlers"
	"github.com/wimdy/wimdy/internal/logging"
	"github.com/wimdy/wimdy/internal/repository"
	"github.com/wimdy/wimdy/internal/seeder"
	"github.com/wimdy/wimdy/internal/storage"
	"github.com/wimdy/wimdy/internal/usecases"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Env)

	db, err := storage.InitDB(cfg.DB)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	if cfg.SeedDB {
		if err := seeder.SeedDatabase(db); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	userStore := repository.NewGormUserStore(db)
	repoStore := repository.NewGormRepositoryStore(db)
	issueStore := repository.NewGormIssueStore(db)
	prStore := repository.NewGormPullRequestStore(db)
	commitStore := repository.NewGormCommitStore(db)

	repositoryUsecase := usecases.NewRepositoryUsecase(repoStore, issueStore, prStore, commitStore, logger)
	issueUsecase := usecases.NewIssueUsecase(repoStore, issueStore, logger)
	pullRequestUsecase := usecases.NewPullRequestUsecase(repoStore, prStore, logger)
	feedUsecase := usecases.NewFeedUsecase(repoStore, issueStore, prStore, commitStore, logger)

	router := httpapi.NewRouter(
		handlers.NewRepositoryHandler(repositoryUsecase),
		handlers.NewIssueHandler(issueUsecase),
		handlers.NewPullRequestHandler(pullRequestUsecase),
		handlers.NewFeedHandler(feedUsecase),
		userStore,
		logger,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info("server is running", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("could not start server", "error", err)
		os.Exit(1)
	}
}
