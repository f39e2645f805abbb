package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handlerApp(h fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(testLogger{})})
	app.Get("/boom", h)
	return app
}

func getBoom(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandler_AppErrorKeepsStatusAndMessage(t *testing.T) {
	app := handlerApp(func(ctx *fiber.Ctx) error {
		return NewNotFoundError("Note not found")
	})

	status, body := getBoom(t, app)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", body["error"])
}

func TestErrorHandler_UnknownErrorIsGeneric500(t *testing.T) {
	app := handlerApp(func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused to 10.0.0.3")
	})

	status, body := getBoom(t, app)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"],
		"internal causes never reach the client")
	assert.NotContains(t, body["error"], "10.0.0.3")
}

func TestErrorHandler_RouterErrorsKeepStatus(t *testing.T) {
	app := handlerApp(func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	status, _ := getBoom(t, app)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
