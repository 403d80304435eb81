package main

import (
	"flag"
	"log"

	"github.com/tenurelab/tenure-backend/cmd"
)

// Set up at compile time with ldflags
var (
	apiVersion = "dev"
)

func main() {
	compiledConfig := cmd.CompiledConfig{
		Version: apiVersion,
	}

	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the API server")
	shouldRunDataIngestion := flag.Bool("data-ingestion", false, "Ingest the CSV extracts once")
	shouldRunPredictions := flag.Bool("predictions", false, "Run the prediction pipeline once")
	shouldRunScheduler := flag.Bool("scheduler", false, "Run the cron job scheduler")
	shouldRunWorker := flag.Bool("worker", false, "Run the task queue worker")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunDataIngestion {
		if err := cmd.RunDataIngestion(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunPredictions {
		if err := cmd.RunPredictions(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunWorker {
		if err := cmd.RunTaskQueue(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunScheduler {
		if err := cmd.RunJobScheduler(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}
}
