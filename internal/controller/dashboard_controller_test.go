package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/pkg/serverutils"
	"second-brain-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardService struct {
	calledWith uuid.UUID
	summary    *dto.DashboardSummary
}

func (s *fakeDashboardService) Summary(ctx context.Context, userId uuid.UUID) (*dto.DashboardSummary, error) {
	s.calledWith = userId
	return s.summary, nil
}

type fakeTagService struct {
	tags []dto.TagResponse
}

func (s *fakeTagService) List(ctx context.Context, userId uuid.UUID) ([]dto.TagResponse, error) {
	return s.tags, nil
}

func TestDashboardController_Summary(t *testing.T) {
	sessions := memory.NewSessionRepository(time.Hour)
	userId := uuid.New()
	token := issueToken(t, sessions, userId)

	svc := &fakeDashboardService{summary: &dto.DashboardSummary{
		RecentNotes:     []*dto.NoteResponse{},
		RecentTasks:     []*dto.TaskResponse{},
		InboxCount:      3,
		TotalNotes:      12,
		ActiveTaskCount: 8,
	}}

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(testLogger{})})
	protected := app.Group("/api", serverutils.NewAuthMiddleware(testSecret, sessions))
	NewDashboardController(svc).RegisterRoutes(protected)
	NewTagController(&fakeTagService{tags: []dto.TagResponse{{Id: uuid.New(), Name: "ideas"}}}).RegisterRoutes(protected)

	status, _ := apiRequest(t, app, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := apiRequest(t, app, http.MethodGet, "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, userId, svc.calledWith)
	assert.Equal(t, float64(3), body["inboxCount"])
	assert.Equal(t, float64(12), body["totalNotes"])
	assert.Equal(t, float64(8), body["activeTaskCount"])
	recentNotes, ok := body["recentNotes"].([]interface{})
	require.True(t, ok, "empty lists serialize as [], not null")
	assert.Empty(t, recentNotes)

	status, _ = apiRequest(t, app, http.MethodGet, "/api/tags", token, nil)
	assert.Equal(t, http.StatusOK, status)
}
