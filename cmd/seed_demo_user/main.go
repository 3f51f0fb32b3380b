package main

import (
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/AndrewTr0612/healthtracker/backend/config"
	"github.com/AndrewTr0612/healthtracker/backend/internal/database"
	"github.com/AndrewTr0612/healthtracker/backend/internal/health"
)

func main() {
	reset := flag.Bool("reset", false, "Delete the existing demo user and create a new one")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gormDB, err := db.Gorm()
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	log.Println("Creating demo user...")
	res, err := seedDemoUser(gormDB, time.Now(), *reset)
	if errors.Is(err, errDemoExists) {
		log.Printf("❌ %v", err)
		return
	}
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	printSummary(res, time.Now())
}

func printSummary(res *seedResult, today time.Time) {
	first := res.Entries[0]
	latest := res.Entries[len(res.Entries)-1]
	age, _ := res.Profile.Age(today)

	measurements := make([]health.Measurement, len(res.Entries))
	for i := range res.Entries {
		measurements[i] = res.Entries[i].Measurement()
	}
	goal := res.Goal.Goal()
	baseline, ok := health.Baseline(measurements, goal.StartDate)
	summary := goal.Summarize(latest.WeightKg, baseline, ok)
	bmi, bmiOK := health.BMI(latest.WeightKg, res.Profile.HeightCm)

	log.Printf("✅ Created user: %s", res.User.Username)
	log.Printf("✅ Created profile: Height %.1fcm, Age %d", res.Profile.HeightCm, age)
	log.Printf("✅ Created %d weight entries", len(res.Entries))
	log.Printf("   Starting weight: %.1fkg → Current weight: %.1fkg", first.WeightKg, latest.WeightKg)
	log.Printf("   Total weight lost: %.1fkg", first.WeightKg-latest.WeightKg)
	log.Printf("✅ Created weight goal: %s to %.1fkg (Moderate pace)", goal.Type.Display(), goal.TargetWeightKg)
	log.Printf("   Goal progress: %.1f%%", summary.Progress)
	if summary.WeeksToGoal != nil {
		log.Printf("   Estimated weeks to goal: %.1f", *summary.WeeksToGoal)
	}

	rule := strings.Repeat("=", 60)
	log.Println(rule)
	log.Println("🔑 Login Credentials:")
	log.Printf("  Username: %s", demoUsername)
	log.Printf("  Password: %s", demoPassword)
	log.Printf("  Email: %s", demoEmail)
	log.Println(rule)
	log.Printf("  Name: %s", res.User.DisplayName())
	log.Printf("  Gender: %s", res.Profile.GenderDisplay())
	log.Printf("  Current BMI: %.2f (%s)", bmi, health.CategoryOf(bmi, bmiOK))
	log.Printf("  Weight Goal: %.1f kg", goal.TargetWeightKg)
	log.Println(rule)
}
