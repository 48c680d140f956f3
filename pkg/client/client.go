package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

// APIError is a non-2xx reply decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client is a thin typed wrapper over the HTTP surface. It holds the
// caller's bearer token; refreshing it is the caller's concern.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends one request and decodes whichever envelope comes back.
// out may be nil for calls whose payload the caller does not need.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ee errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&ee); err != nil {
			return &APIError{Status: resp.StatusCode, Code: "unknown", Message: "unreadable error response"}
		}
		return &APIError{Status: resp.StatusCode, Code: ee.Code, Message: ee.Message}
	}

	if out == nil {
		return nil
	}
	var se successEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&se); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(se.Data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func (c *Client) ListTransactions(ctx context.Context, kind string) ([]models.Transaction, error) {
	path := "/transactions"
	if kind != "" {
		path += "?type=" + url.QueryEscape(kind)
	}
	var txs []models.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+transactionID, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+transactionID, nil, nil)
}

func (c *Client) RunningBalance(ctx context.Context, transactionID string) (finance.RunningBalance, error) {
	var rb finance.RunningBalance
	err := c.do(ctx, http.MethodGet, "/transactions/"+transactionID+"/running-balance", nil, &rb)
	return rb, err
}

func (c *Client) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := c.do(ctx, http.MethodGet, "/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	var g models.Goal
	if err := c.do(ctx, http.MethodPost, "/goals", req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	var g models.Goal
	if err := c.do(ctx, http.MethodPut, "/goals/"+goalID, req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	return c.do(ctx, http.MethodDelete, "/goals/"+goalID, nil, nil)
}

func (c *Client) AddGoalProgress(ctx context.Context, goalID string, req dto.AddGoalProgressRequest) (*models.Goal, error) {
	var g models.Goal
	if err := c.do(ctx, http.MethodPost, "/goals/"+goalID+"/progress", req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/users/me", nil, nil)
}
