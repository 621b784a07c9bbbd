package main

import (
	"context"
	"fmt"
	"time"

	"github.com/edustat/markboard-backend/internal/config"
	"github.com/edustat/markboard-backend/internal/database"
	"github.com/edustat/markboard-backend/internal/logger"
	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/repository"
)

// Seeds demo students, queries, and notifications. Student enrollment and
// query submission happen in a separate system, so the API surface has no
// way to create these records; without seeding, stats and the query board
// stay empty.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	queryRepo := repository.NewQueryRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	department := "Computer"
	year := "TE"
	division := "A"

	names := []string{
		"Aarav Deshmukh", "Isha Kulkarni", "Rohan Patil", "Sneha Joshi", "Vivek Sharma",
		"Priya Nair", "Karan Mehta", "Ananya Iyer", "Siddharth Rao", "Neha Gupta",
		"Aditya Bhosale", "Pooja Shinde", "Rahul Verma", "Tanvi Sawant", "Omkar Jadhav",
		"Riya Kapoor", "Harsh Pandey", "Shruti Phadke", "Nikhil Chavan", "Mitali Dixit",
	}

	fmt.Printf("=== Seeding %d students (%s %s %s) ===\n", len(names), department, year, division)

	created := 0
	for i, name := range names {
		student := &model.Student{
			StudentID:  fmt.Sprintf("S%03d", i+1),
			Name:       name,
			Department: department,
			Year:       year,
			Division:   division,
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student %s: %v\n", student.StudentID, err)
			continue
		}
		created++
	}
	fmt.Printf("Created %d students\n", created)

	queries := []model.Query{
		{
			StudentID: "S001", StudentName: names[0],
			Subject: "DBMS", Division: division, Department: department, Year: year,
			Message: "Could you recheck my marks for paper 2? The total looks off.",
			Status:  model.QueryStatusPending,
		},
		{
			StudentID: "S004", StudentName: names[3],
			Subject: "DBMS", Division: division, Department: department, Year: year,
			Message: "Will the FA submission deadline be extended?",
			Status:  model.QueryStatusPending,
		},
	}
	for i := range queries {
		if err := queryRepo.Create(ctx, &queries[i]); err != nil {
			fmt.Printf("Error creating query: %v\n", err)
		}
	}
	fmt.Printf("Created %d queries\n", len(queries))

	notifications := []model.Notification{
		{Type: "announcement", Message: "Unit test 2 marks have been published.", Status: model.NotificationStatusActive},
		{Type: "reminder", Message: "FA mode selection closes this Friday.", Status: model.NotificationStatusActive},
		{Type: "announcement", Message: "Old notice kept for history.", Status: model.NotificationStatusInactive},
	}
	for i := range notifications {
		if err := notificationRepo.Create(ctx, &notifications[i]); err != nil {
			fmt.Printf("Error creating notification: %v\n", err)
		}
	}
	fmt.Printf("Created %d notifications\n", len(notifications))

	fmt.Println("\nSeed completed!")
}
