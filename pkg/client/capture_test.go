package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"second-brain-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureServer struct {
	*httptest.Server
	noteRequests []dto.CreateNoteRequest
	taskRequests []dto.CreateTaskRequest
	noteStatus   int
	noteBody     string
	block        chan struct{} // when set, note creation waits until closed
	started      chan struct{}
}

func newCaptureServer(t *testing.T) *captureServer {
	t.Helper()
	s := &captureServer{
		noteStatus: http.StatusCreated,
		started:    make(chan struct{}, 8),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notes", func(w http.ResponseWriter, r *http.Request) {
		s.started <- struct{}{}
		if s.block != nil {
			<-s.block
		}
		var req dto.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.noteRequests = append(s.noteRequests, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.noteStatus)
		if s.noteBody != "" {
			_, _ = w.Write([]byte(s.noteBody))
			return
		}
		_ = json.NewEncoder(w).Encode(dto.NoteResponse{
			Id:      uuid.New(),
			Title:   req.Title,
			Content: req.Content,
			Inbox:   req.Inbox,
			Tags:    []dto.TagResponse{},
		})
	})
	mux.HandleFunc("POST /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		s.taskRequests = append(s.taskRequests, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.TaskResponse{
			Id:    uuid.New(),
			Title: req.Title,
			Habit: req.Habit,
			Tags:  []dto.TagResponse{},
		})
	})
	mux.HandleFunc("GET /api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.DashboardSummary{
			RecentNotes: []*dto.NoteResponse{},
			RecentTasks: []*dto.TaskResponse{},
			InboxCount:  1,
			TotalNotes:  1,
		})
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestCaptureFlow_SubmitNote_DefaultsAndClearsDraft(t *testing.T) {
	server := newCaptureServer(t)
	flow := NewCaptureFlow(New(server.URL))

	flow.SetNoteDraft(NoteDraft{Content: "jotted down in a hurry"})

	summary, err := flow.SubmitNote(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(1), summary.InboxCount)

	require.Len(t, server.noteRequests, 1)
	sent := server.noteRequests[0]
	require.NotNil(t, sent.Title)
	assert.Equal(t, "Quick Note", *sent.Title, "untitled captures get the default title")
	assert.True(t, sent.Inbox, "captures always land in the inbox")

	assert.Empty(t, flow.NoteDraft().Content, "draft cleared on success")
	assert.Empty(t, flow.LastError())
}

func TestCaptureFlow_SubmitNote_KeepsExplicitTitle(t *testing.T) {
	server := newCaptureServer(t)
	flow := NewCaptureFlow(New(server.URL))

	flow.SetNoteDraft(NoteDraft{Title: "Meeting", Content: "minutes"})
	_, err := flow.SubmitNote(context.Background())
	require.NoError(t, err)

	require.Len(t, server.noteRequests, 1)
	assert.Equal(t, "Meeting", *server.noteRequests[0].Title)
}

func TestCaptureFlow_APIFailureUsesGenericMessage(t *testing.T) {
	server := newCaptureServer(t)
	server.noteStatus = http.StatusInternalServerError
	server.noteBody = `{"error":"Internal server error"}`
	flow := NewCaptureFlow(New(server.URL))

	flow.SetNoteDraft(NoteDraft{Content: "keep me"})
	_, err := flow.SubmitNote(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal server error", apiErr.Message, "detail stays on the typed error")
	assert.Equal(t, "Failed to create note", flow.LastError(), "the surfaced message is generic")
	assert.Equal(t, "keep me", flow.NoteDraft().Content, "failed drafts are kept for retry")
}

func TestCaptureFlow_TransportFailure(t *testing.T) {
	server := newCaptureServer(t)
	server.Close()
	flow := NewCaptureFlow(New(server.URL))

	flow.SetNoteDraft(NoteDraft{Content: "hello"})
	_, err := flow.SubmitNote(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Something went wrong", flow.LastError())
}

func TestCaptureFlow_SecondSubmitWhileBusyIsRejected(t *testing.T) {
	server := newCaptureServer(t)
	server.block = make(chan struct{})
	flow := NewCaptureFlow(New(server.URL))
	flow.SetNoteDraft(NoteDraft{Content: "slow one"})

	done := make(chan error, 1)
	go func() {
		_, err := flow.SubmitNote(context.Background())
		done <- err
	}()

	// Wait until the first submit has reached the server, then try another.
	select {
	case <-server.started:
	case <-time.After(time.Second):
		t.Fatal("first submit never reached the server")
	}

	_, err := flow.SubmitNote(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(server.block)
	require.NoError(t, <-done)

	// Once the in-flight submit finishes, new submits are accepted again.
	flow.SetNoteDraft(NoteDraft{Content: "second"})
	server.block = nil
	_, err = flow.SubmitNote(context.Background())
	assert.NoError(t, err)
}

func TestCaptureFlow_SubmitTask(t *testing.T) {
	server := newCaptureServer(t)
	flow := NewCaptureFlow(New(server.URL))

	flow.SetTaskDraft(TaskDraft{
		Title:       "Water plants",
		Description: "the big one first",
		DueDate:     "2026-09-01",
		Habit:       true,
	})

	summary, err := flow.SubmitTask(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	require.Len(t, server.taskRequests, 1)
	sent := server.taskRequests[0]
	assert.Equal(t, "Water plants", sent.Title)
	require.NotNil(t, sent.DueDate)
	assert.Equal(t, "2026-09-01", *sent.DueDate)
	assert.True(t, sent.Habit)

	assert.Empty(t, flow.TaskDraft().Title, "draft cleared on success")
}
