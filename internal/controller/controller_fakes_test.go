package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/pkg/serverutils"
	"second-brain-be/internal/repository/contract"
	"second-brain-be/internal/repository/memory"
	"second-brain-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-secret"

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type fakeNoteService struct {
	createdBy   uuid.UUID
	createdReq  *dto.CreateNoteRequest
	listFilter  dto.ListNotesFilter
	updatedReq  *dto.UpdateNoteRequest
	deletedID   uuid.UUID
	createCalls int
	err         error
}

func (s *fakeNoteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	s.createCalls++
	if s.err != nil {
		return nil, s.err
	}
	s.createdBy = userId
	s.createdReq = req
	return &dto.NoteResponse{
		Id:      uuid.New(),
		Title:   req.Title,
		Content: req.Content,
		Inbox:   req.Inbox,
		UserId:  userId,
		Tags:    []dto.TagResponse{},
	}, nil
}

func (s *fakeNoteService) List(ctx context.Context, userId uuid.UUID, filter dto.ListNotesFilter) ([]*dto.NoteResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.listFilter = filter
	return []*dto.NoteResponse{}, nil
}

func (s *fakeNoteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updatedReq = req
	return &dto.NoteResponse{Id: req.Id, Content: req.Content, Tags: []dto.TagResponse{}}, nil
}

func (s *fakeNoteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

type fakeTaskService struct {
	createdBy  uuid.UUID
	createdReq *dto.CreateTaskRequest
	listFilter dto.ListTasksFilter
	err        error
}

func (s *fakeTaskService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdBy = userId
	s.createdReq = req
	return &dto.TaskResponse{
		Id:     uuid.New(),
		Title:  req.Title,
		Habit:  req.Habit,
		UserId: userId,
		Tags:   []dto.TagResponse{},
	}, nil
}

func (s *fakeTaskService) List(ctx context.Context, userId uuid.UUID, filter dto.ListTasksFilter) ([]*dto.TaskResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.listFilter = filter
	return []*dto.TaskResponse{}, nil
}

func (s *fakeTaskService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.TaskResponse{Id: req.Id, Title: req.Title, Tags: []dto.TagResponse{}}, nil
}

func (s *fakeTaskService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return s.err
}

// newAPI assembles the protected route group the way the server does: one
// auth middleware on the group, controllers registered underneath.
func newAPI(t *testing.T, notes *fakeNoteService, tasks *fakeTaskService) (*fiber.App, string, uuid.UUID) {
	t.Helper()

	sessions := memory.NewSessionRepository(time.Hour)
	userId := uuid.New()
	token := issueToken(t, sessions, userId)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(testLogger{})})
	api := app.Group("/api")
	protected := api.Group("", serverutils.NewAuthMiddleware(testSecret, sessions))
	if notes != nil {
		NewNoteController(notes).RegisterRoutes(protected)
	}
	if tasks != nil {
		NewTaskController(tasks).RegisterRoutes(protected)
	}
	return app, token, userId
}

func issueToken(t *testing.T, sessions contract.SessionRepository, userId uuid.UUID) string {
	t.Helper()
	now := time.Now()
	session := &store.Session{
		ID:        uuid.NewString(),
		UserID:    userId,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), session))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": session.ID,
		"user_id":    userId.String(),
		"exp":        session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func apiRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}
