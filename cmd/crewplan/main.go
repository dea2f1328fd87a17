package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/alexanderramin/crewplan/internal/cli"
	"github.com/alexanderramin/crewplan/internal/config"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/logging"
	"github.com/alexanderramin/crewplan/internal/metrics"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg *config.Config
	var err error
	if path := os.Getenv("CREWPLAN_CONFIG"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if dbPath := os.Getenv("CREWPLAN_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	log := logging.New("crewplan", cfg.Logging.Level)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	staffRepo := repository.NewSQLiteStaffRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	absenceRepo := repository.NewSQLiteAbsenceRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	versionRepo := repository.NewSQLiteVersionRepo(database)

	// Wire unit of work for the schedule replace
	uow := db.NewSQLiteUnitOfWork(database)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(registry))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics endpoint failed")
			}
		}()
	}

	app := &cli.App{
		Staff:     service.NewStaffService(staffRepo),
		WorkItems: service.NewWorkItemService(workItemRepo),
		Absences:  service.NewAbsenceService(absenceRepo, staffRepo),
		Plan: service.NewPlanService(
			staffRepo, workItemRepo, absenceRepo, scheduleRepo, versionRepo,
			uow, cfg.DailyCapacityHours, log, collector,
		),
		Status: service.NewStatusService(staffRepo, workItemRepo, absenceRepo, scheduleRepo),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
