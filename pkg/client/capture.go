package client

import (
	"context"
	"errors"
	"sync"

	"second-brain-be/internal/dto"
)

// ErrBusy is returned when a submit is attempted while another is in flight.
var ErrBusy = errors.New("capture already in progress")

const defaultNoteTitle = "Quick Note"

type NoteDraft struct {
	Title   string
	Content string
}

type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Habit       bool
}

// CaptureFlow orchestrates quick capture: one submit at a time, the draft is
// cleared and the dashboard refreshed on success, and every failure collapses
// to a single generic message. Server error detail is discarded on purpose;
// the typed APIError remains available through errors.As for callers that
// need it.
type CaptureFlow struct {
	client *Client

	mu        sync.Mutex
	busy      bool
	noteDraft NoteDraft
	taskDraft TaskDraft
	lastError string
}

func NewCaptureFlow(client *Client) *CaptureFlow {
	return &CaptureFlow{
		client: client,
	}
}

func (f *CaptureFlow) SetNoteDraft(d NoteDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteDraft = d
}

func (f *CaptureFlow) SetTaskDraft(d TaskDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taskDraft = d
}

func (f *CaptureFlow) NoteDraft() NoteDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.noteDraft
}

func (f *CaptureFlow) TaskDraft() TaskDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taskDraft
}

// LastError returns the generic message of the most recent failed submit,
// empty after a success.
func (f *CaptureFlow) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

func (f *CaptureFlow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return ErrBusy
	}
	f.busy = true
	f.lastError = ""
	return nil
}

func (f *CaptureFlow) finish(genericMsg string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err == nil {
		return
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		f.lastError = genericMsg
	} else {
		f.lastError = "Something went wrong"
	}
}

// SubmitNote captures the current note draft. An untitled quick note gets a
// default title, and capture always lands in the inbox. On success the draft
// is cleared and a fresh dashboard summary is returned.
func (f *CaptureFlow) SubmitNote(ctx context.Context) (*dto.DashboardSummary, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}

	draft := f.NoteDraft()
	title := draft.Title
	if title == "" {
		title = defaultNoteTitle
	}
	req := dto.CreateNoteRequest{
		Title:   &title,
		Content: draft.Content,
		Inbox:   true,
	}

	_, err := f.client.CreateNote(ctx, &req)
	f.finish("Failed to create note", err)
	if err != nil {
		return nil, err
	}

	f.SetNoteDraft(NoteDraft{})
	return f.client.Dashboard(ctx)
}

// SubmitTask captures the current task draft, then clears it and returns a
// fresh dashboard summary.
func (f *CaptureFlow) SubmitTask(ctx context.Context) (*dto.DashboardSummary, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}

	draft := f.TaskDraft()
	req := dto.CreateTaskRequest{
		Title: draft.Title,
		Habit: draft.Habit,
	}
	if draft.Description != "" {
		req.Description = &draft.Description
	}
	if draft.DueDate != "" {
		req.DueDate = &draft.DueDate
	}

	_, err := f.client.CreateTask(ctx, &req)
	f.finish("Failed to create task", err)
	if err != nil {
		return nil, err
	}

	f.SetTaskDraft(TaskDraft{})
	return f.client.Dashboard(ctx)
}
