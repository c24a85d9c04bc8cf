// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"gigboard/internal/config"
	"gigboard/internal/database"
	"gigboard/internal/middleware"
	"gigboard/internal/seed"
)

func main() {
	numSeekers := flag.Int("seekers", 30, "Number of job-seeker accounts to create")
	numJobs := flag.Int("jobs", 40, "Number of job postings to create")
	numProjects := flag.Int("projects", 25, "Number of freelance projects to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	logger := middleware.NewLogger()
	s := seed.NewSeeder(db, logger)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numSeekers, *numJobs, *numProjects); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. All seeded accounts use the password %q.", seed.DefaultPassword)
}
