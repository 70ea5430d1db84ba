package main

import (
	"log"

	"github.com/joho/godotenv"

	"restaurant-ops/config"
	"restaurant-ops/repository"
	"restaurant-ops/router"
	"restaurant-ops/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	utils.InitLogger()
	cfg := config.Load()

	var repos *repository.Repositories
	switch cfg.StoreDriver {
	case "sqlite":
		db, err := repository.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			utils.ErrorLogger.Fatalf("open sqlite store: %v", err)
		}
		repos = repository.NewGormRepositories(db)
		utils.InfoLogger.Printf("Using sqlite store at %s", cfg.SqlitePath)
	default:
		repos = repository.NewMemoryRepositories()
		utils.InfoLogger.Printf("Using in-memory store")
	}

	svcs := router.NewServices(repos)
	r := router.SetupRouter(svcs)

	utils.InfoLogger.Printf("Listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		utils.ErrorLogger.Fatalf("server stopped: %v", err)
	}
}
