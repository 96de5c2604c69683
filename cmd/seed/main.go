// Command seed populates the database with generated demo data.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	followsPer := flag.Int("follows", 5, "Follow edges per user")
	maxDays := flag.Int("days", 30, "Spread posts over this many past days")
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

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	if err := s.SeedPosts(users, *numPosts, *maxDays); err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}
	if err := s.SeedFollows(users, *followsPer); err != nil {
		log.Fatalf("Follow seeding failed: %v", err)
	}

	log.Printf("All done. Every seeded user has the password %q.", seed.DefaultPassword)
}
