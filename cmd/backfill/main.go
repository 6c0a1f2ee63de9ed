package main

import (
	"context"
	"time"

	"haatbazar_admin/internal/app"
	"haatbazar_admin/internal/config"
	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/maintenance"
	"haatbazar_admin/internal/repositories"
)

// Разовая миграция: проставляет isApproved=false документам вакансий,
// созданным до появления модерации.
func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := app.ConnectMongo(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	jobRepo := repositories.NewJobRepository(db)
	backfill := maintenance.NewBackfillService(jobRepo)

	result, err := backfill.BackfillApprovalFlags(ctx)
	if err != nil {
		logger.Fatal("Backfill failed", "error", err)
	}

	logger.Info("Backfill finished",
		"jobs", result.Jobs,
		"workerOffers", result.WorkerOffers,
		"employerOffers", result.EmployerOffers,
	)
}
