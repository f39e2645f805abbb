package main

import (
	"log"
	"os"

	"second-brain-be/internal/model"
	"second-brain-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo user with a handful of tags, notes and tasks so the dashboard
// has something to show on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	demoEmail := "demo@example.com"

	var existing model.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		log.Printf("Demo user '%s' already exists, skipping...", demoEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password: ", err)
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        demoEmail,
		Name:         "Demo User",
		PasswordHash: &hashStr,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user: ", err)
	}
	log.Printf("Created demo user: %s", demoEmail)

	tags := []model.Tag{
		{Id: uuid.New(), Name: "reading", UserId: user.Id},
		{Id: uuid.New(), Name: "work", UserId: user.Id},
		{Id: uuid.New(), Name: "ideas", UserId: user.Id},
	}
	for i := range tags {
		if err := db.Create(&tags[i]).Error; err != nil {
			log.Printf("Error creating tag '%s': %v", tags[i].Name, err)
		}
	}

	title := "Welcome to your second brain"
	notes := []model.Note{
		{Id: uuid.New(), Title: &title, Content: "Capture anything. Triage it later from the inbox.", Inbox: true, UserId: user.Id},
		{Id: uuid.New(), Content: "Quick thoughts land in the inbox by default.", Inbox: true, UserId: user.Id},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Printf("Error creating note: %v", err)
			continue
		}
		if err := db.Model(&notes[i]).Association("Tags").Append(&tags[2]); err != nil {
			log.Printf("Error tagging note: %v", err)
		}
	}

	desc := "Go through the inbox and file or delete each item"
	tasks := []model.Task{
		{Id: uuid.New(), Title: "Process the inbox", Description: &desc, Habit: true, UserId: user.Id},
		{Id: uuid.New(), Title: "Write down three ideas", Habit: true, UserId: user.Id},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Printf("Error creating task: %v", err)
			continue
		}
		if err := db.Model(&tasks[i]).Association("Tags").Append(&tags[1]); err != nil {
			log.Printf("Error tagging task: %v", err)
		}
	}

	log.Println("Seeding completed!")
}
