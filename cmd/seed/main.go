package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskhub/internal/employees"
	"taskhub/internal/objects"
	"taskhub/internal/shared/config"
	"taskhub/internal/shared/database"
	"taskhub/internal/tasks"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting TaskHub Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tasks",
		"objects",
		"employees",
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedEmployees(); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	if err := s.SeedObjects(); err != nil {
		return fmt.Errorf("failed to seed objects: %w", err)
	}

	if err := s.SeedTasks(); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedEmployees loads the default twelve-person roster
func (s *Seeder) SeedEmployees() error {
	fmt.Println("  👤 Seeding employees...")

	roster := employees.DefaultRoster()
	if err := s.db.PostgreSQL.Create(&roster).Error; err != nil {
		return fmt.Errorf("failed to create roster: %w", err)
	}

	for _, emp := range roster {
		externalID := ""
		if emp.ExternalID != nil {
			externalID = *emp.ExternalID
		}
		fmt.Printf("    ✅ Created employee: %s %s (%s, store %d)\n",
			emp.FirstName, emp.LastName, externalID, emp.StoreID)
	}

	return nil
}

// SeedObjects creates a few sample objects
func (s *Seeder) SeedObjects() error {
	fmt.Println("  📦 Seeding objects...")

	age := func(n int) *int { return &n }

	objectsData := []objects.Object{
		{Name: "Alice Example", Email: "alice@example.com", Age: age(34)},
		{Name: "Bob Example", Email: "bob@example.com", Age: age(28)},
		{Name: "Carol Example", Email: "carol@example.com"},
	}

	for i := range objectsData {
		if err := s.db.PostgreSQL.Create(&objectsData[i]).Error; err != nil {
			return fmt.Errorf("failed to create object %s: %w", objectsData[i].Name, err)
		}
		fmt.Printf("    ✅ Created object: %s\n", objectsData[i].Name)
	}

	return nil
}

// SeedTasks creates sample tasks across statuses and priorities
func (s *Seeder) SeedTasks() error {
	fmt.Println("  📝 Seeding tasks...")

	desc := func(text string) *string { return &text }
	priority := func(p tasks.PriorityLevel) *tasks.PriorityLevel { return &p }
	status := func(st tasks.TaskStatus) *tasks.TaskStatus { return &st }
	assignee := func(id int) *int { return &id }

	now := time.Now().UTC()

	tasksData := []tasks.Task{
		{
			Title:         "Restock shelves in store 1",
			Description:   desc("Front-of-store displays need restocking before the weekend."),
			PriorityLevel: priority(tasks.PriorityHigh),
			Status:        status(tasks.StatusToDo),
			AssignedTo:    assignee(1),
		},
		{
			Title:         "Quarterly inventory count",
			Description:   desc("Full count of backroom inventory."),
			PriorityLevel: priority(tasks.PriorityMedium),
			Status:        status(tasks.StatusInProgress),
			AssignedTo:    assignee(4),
		},
		{
			Title:         "Replace broken freezer door",
			PriorityLevel: priority(tasks.PriorityHigh),
			Status:        status(tasks.StatusDone),
			AssignedTo:    assignee(7),
			CompletedAt:   &now,
		},
		{
			Title:         "Update price labels",
			PriorityLevel: priority(tasks.PriorityLow),
			Status:        status(tasks.StatusToDo),
		},
	}

	for i := range tasksData {
		if err := s.db.PostgreSQL.Create(&tasksData[i]).Error; err != nil {
			return fmt.Errorf("failed to create task %s: %w", tasksData[i].Title, err)
		}
		fmt.Printf("    ✅ Created task: %s\n", tasksData[i].Title)
	}

	return nil
}
