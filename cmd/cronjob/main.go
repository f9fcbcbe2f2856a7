package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agrorent-backend/internal/app"
	"agrorent-backend/internal/config"
	"agrorent-backend/internal/jobs"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'rebuild-rating-aggregates', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AgroRent cronjob runner...", "log_level", cfg.Log.Level)

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer a.Close()

	jobRunner := jobs.NewJobRunner(&jobs.Services{Reputation: a.Reputation}, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := runJobOnce(jobRunner, *runOnce); err != nil {
			a.Close()
			log.Fatalf("Job %s failed: %v", *runOnce, err)
		}
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to create scheduler", "error", err)
		a.Close()
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_runs", cronScheduler.NextRuns())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
}

// runJobOnce runs a specific job once
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) error {
	switch jobName {
	case "rebuild-rating-aggregates":
		return jobRunner.RebuildRatingAggregates()
	case "all-nightly":
		return jobRunner.RunAllNightlyJobs()
	default:
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - rebuild-rating-aggregates\n")
		fmt.Printf("  - all-nightly\n")
		return fmt.Errorf("unknown job %q", jobName)
	}
}
