package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"second-brain-be/pkg/client"
)

// Quick-capture CLI: logs in, submits a note or a task, prints the refreshed
// dashboard counts.
func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:3000", "server base URL")
		email    = flag.String("email", os.Getenv("CAPTURE_EMAIL"), "account email")
		password = flag.String("password", os.Getenv("CAPTURE_PASSWORD"), "account password")
		note     = flag.String("note", "", "capture a note with this content")
		title    = flag.String("title", "", "optional note title / task title")
		task     = flag.Bool("task", false, "capture a task instead of a note")
		desc     = flag.String("desc", "", "task description")
		due      = flag.String("due", "", "task due date (RFC3339 or YYYY-MM-DD)")
		habit    = flag.Bool("habit", false, "mark the task as a habit")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required (flags or CAPTURE_EMAIL/CAPTURE_PASSWORD)")
	}
	if !*task && *note == "" {
		log.Fatal("nothing to capture: pass -note <content> or -task -title <title>")
	}
	if *task && *title == "" {
		log.Fatal("a task needs -title")
	}

	ctx := context.Background()
	c := client.New(*baseURL)
	if _, err := c.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	flow := client.NewCaptureFlow(c)

	var err error
	if *task {
		flow.SetTaskDraft(client.TaskDraft{
			Title:       *title,
			Description: *desc,
			DueDate:     *due,
			Habit:       *habit,
		})
		dash, submitErr := flow.SubmitTask(ctx)
		err = submitErr
		if err == nil {
			fmt.Printf("task captured. inbox=%d activeTasks=%d\n", dash.InboxCount, dash.ActiveTaskCount)
		}
	} else {
		flow.SetNoteDraft(client.NoteDraft{
			Title:   *title,
			Content: *note,
		})
		dash, submitErr := flow.SubmitNote(ctx)
		err = submitErr
		if err == nil {
			fmt.Printf("note captured. inbox=%d totalNotes=%d\n", dash.InboxCount, dash.TotalNotes)
		}
	}

	if err != nil {
		if msg := flow.LastError(); msg != "" {
			log.Fatalf("%s (%v)", msg, err)
		}
		log.Fatalf("capture failed: %v", err)
	}
}
