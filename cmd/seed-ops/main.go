package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bitbucket.org/nileloom/bagops_backend/config"
	"bitbucket.org/nileloom/bagops_backend/models"
	"bitbucket.org/nileloom/bagops_backend/seeder"
)

func main() {
	path := flag.String("path", "seed_data.json", "Path to seed_data.json")
	flag.Parse()

	if _, err := os.Stat(*path); err != nil {
		fmt.Fprintf(os.Stderr, "seed file not found: %s\n", *path)
		os.Exit(2)
	}

	logger := config.GetLogger()

	fx, err := seeder.Load(*path)
	if err != nil {
		config.LogError(logger, "cmd/seed-ops", "main", "load fixture", *path, err)
		fmt.Fprintf(os.Stderr, "failed to load fixture: %v\n", err)
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}
	models.MigrateTable()

	s := seeder.New(db, logger)
	if err := s.Run(context.Background(), fx); err != nil {
		config.LogError(logger, "cmd/seed-ops", "main", "seed run", nil, err)
		fmt.Fprintf(os.Stderr, "seed run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seeding completed.")
}
