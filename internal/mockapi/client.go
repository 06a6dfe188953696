package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Sneha-8765/task-manager/internal/domain"
	"github.com/Sneha-8765/task-manager/internal/dto"
)

// baseURL is never resolved; the transport short-circuits before DNS.
const baseURL = "http://task-manager.mock"

// APIError is a structured error payload returned by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client is the typed facade the view layer calls. It speaks ordinary HTTP
// through the intercepting transport.
type Client struct {
	hc *http.Client
}

// NewClient returns a client whose requests are served by h in-process.
func NewClient(h http.Handler) *Client {
	return &Client{hc: &http.Client{Transport: NewTransport(h)}}
}

// Register creates an account and returns the user with a fresh token.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/register", req, &out)
	return out, err
}

// Login authenticates with username and password.
func (c *Client) Login(ctx context.Context, username, password string) (dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/login", dto.LoginRequest{Username: username, Password: password}, &out)
	return out, err
}

// ResetDemoData restores the canonical demo data and returns the demo
// credentials.
func (c *Client) ResetDemoData(ctx context.Context) (dto.ResetResponse, error) {
	var out dto.ResetResponse
	err := c.do(ctx, http.MethodPost, "/api/reset-demo-data", nil, &out)
	return out, err
}

// ListTasks fetches the tasks owned by userID.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	var out []domain.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks?userId="+url.QueryEscape(userID), nil, &out)
	return out, err
}

// CreateTask creates a task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (domain.Task, error) {
	var out domain.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", req, &out)
	return out, err
}

// UpdateTask applies a partial update and returns the merged record.
func (c *Client) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (domain.Task, error) {
	var out domain.Task
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteTask removes a task. Deleting an absent id still succeeds.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

// DashboardStats fetches the aggregated counters for userID.
func (c *Client) DashboardStats(ctx context.Context, userID string) (domain.DashboardStats, error) {
	var out domain.DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats?userId="+url.QueryEscape(userID), nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
