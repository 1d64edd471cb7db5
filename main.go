package main

import (
	"context"
	"log"
	"os"
	"time"

	"emenu/cmd/config"
	migration "emenu/cmd/database/migrate"
	"emenu/cmd/database/seed"
	"emenu/internal/utils"

	"github.com/robfig/cron/v3"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
		return
	}

	app, reportService, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	// Daily digest at 10:00, matching the report window's previous-day
	// semantics. The job itself is a plain service call, so an external
	// scheduler can trigger it too.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("0 10 * * *", func() {
		result, err := reportService.SendDailyReport(context.Background(), time.Now())
		if err != nil {
			log.Printf("daily report failed: %v", err)
			return
		}
		log.Printf("daily report: outcome=%s sent=%d", result.Outcome, result.SentCount)
	})
	if err != nil {
		log.Fatalf("failed to schedule daily report: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
