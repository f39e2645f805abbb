package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"second-brain-be/internal/dto"
)

// APIError carries the structured error body a failed call returned. The
// capture flow deliberately discards it in favor of a generic message, but
// the detail stays available to callers that want it.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{
			Status:  resp.StatusCode,
			Message: errBody.Error,
		}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	var res dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", &req, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

func (c *Client) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	var res dto.NoteResponse
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	var res dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListNotes(ctx context.Context, inbox bool) ([]*dto.NoteResponse, error) {
	path := "/api/notes"
	if inbox {
		path += "?inbox=true"
	}
	var res []*dto.NoteResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardSummary, error) {
	var res dto.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
