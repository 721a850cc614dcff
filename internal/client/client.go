// Package client is an HTTP client for the record API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/aggregate"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// DefaultTimeout is used when Config.Timeout is not set.
const DefaultTimeout = 10 * time.Second

// APIError is returned for every response with a non-2xx status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the external URL of the backend, e.g. https://example.com
	BaseURL string
	Timeout time.Duration

	// HTTPClient replaces the default client. Timeout is ignored if it is set.
	HTTPClient *http.Client
}

// Client is a client for the transaction, budget and summary endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

type transactionBody struct {
	OwnerID string `json:"ownerId"`
	models.TransactionEditable
}

type budgetBody struct {
	OwnerID string `json:"ownerId"`
	models.BudgetEditable
}

type deleteResponse struct {
	Message string `json:"message"`
}

// Transactions returns all transactions of the owner, the most recent first.
func (c *Client) Transactions(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := c.do(ctx, http.MethodGet, "/api/transactions", ownerQuery(ownerID), nil, &transactions)
	return transactions, err
}

// Transaction returns a single transaction of the owner.
func (c *Client) Transaction(ctx context.Context, ownerID string, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := c.do(ctx, http.MethodGet, "/api/transactions/"+id.String(), ownerQuery(ownerID), nil, &transaction)
	return transaction, err
}

// CreateTransaction creates a transaction for the owner.
func (c *Client) CreateTransaction(ctx context.Context, ownerID string, fields models.TransactionEditable) (models.Transaction, error) {
	var transaction models.Transaction
	err := c.do(ctx, http.MethodPost, "/api/transactions", nil, transactionBody{OwnerID: ownerID, TransactionEditable: fields}, &transaction)
	return transaction, err
}

// UpdateTransaction overwrites all editable fields of a transaction of the owner.
func (c *Client) UpdateTransaction(ctx context.Context, ownerID string, id uuid.UUID, fields models.TransactionEditable) (models.Transaction, error) {
	var transaction models.Transaction
	err := c.do(ctx, http.MethodPatch, "/api/transactions/"+id.String(), nil, transactionBody{OwnerID: ownerID, TransactionEditable: fields}, &transaction)
	return transaction, err
}

// DeleteTransaction deletes a transaction of the owner.
func (c *Client) DeleteTransaction(ctx context.Context, ownerID string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id.String(), ownerQuery(ownerID), nil, &deleteResponse{})
}

// Budgets returns all budgets of the owner, the most recent month first.
func (c *Client) Budgets(ctx context.Context, ownerID string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := c.do(ctx, http.MethodGet, "/api/budgets", ownerQuery(ownerID), nil, &budgets)
	return budgets, err
}

// Budget returns a single budget of the owner.
func (c *Client) Budget(ctx context.Context, ownerID string, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := c.do(ctx, http.MethodGet, "/api/budgets/"+id.String(), ownerQuery(ownerID), nil, &budget)
	return budget, err
}

// CreateBudget creates a budget for the owner.
func (c *Client) CreateBudget(ctx context.Context, ownerID string, fields models.BudgetEditable) (models.Budget, error) {
	var budget models.Budget
	err := c.do(ctx, http.MethodPost, "/api/budgets", nil, budgetBody{OwnerID: ownerID, BudgetEditable: fields}, &budget)
	return budget, err
}

// UpdateBudget overwrites all editable fields of a budget of the owner.
func (c *Client) UpdateBudget(ctx context.Context, ownerID string, id uuid.UUID, fields models.BudgetEditable) (models.Budget, error) {
	var budget models.Budget
	err := c.do(ctx, http.MethodPatch, "/api/budgets/"+id.String(), nil, budgetBody{OwnerID: ownerID, BudgetEditable: fields}, &budget)
	return budget, err
}

// DeleteBudget deletes a budget of the owner.
func (c *Client) DeleteBudget(ctx context.Context, ownerID string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/budgets/"+id.String(), ownerQuery(ownerID), nil, &deleteResponse{})
}

// Summary returns the aggregated views of the owner for a month.
func (c *Client) Summary(ctx context.Context, ownerID string, month types.MonthKey, policy aggregate.BudgetPolicy) (aggregate.Summary, error) {
	query := ownerQuery(ownerID)
	query.Set("month", month.String())
	query.Set("budgetPolicy", policy.String())

	var summary aggregate.Summary
	err := c.do(ctx, http.MethodGet, "/api/summary", query, nil, &summary)
	return summary, err
}

func ownerQuery(ownerID string) url.Values {
	return url.Values{"ownerId": []string{ownerID}}
}

// do sends a request and decodes the JSON response into target.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().Str("method", method).Str("url", reqURL).Msg("client")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp, respBody)
	}

	if err := json.Unmarshal(respBody, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// apiError builds the APIError for a response. The message is taken from
// the error body if there is one, the status text otherwise.
func apiError(resp *http.Response, body []byte) *APIError {
	var e struct {
		Error string `json:"error"`
	}

	message := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		message = e.Error
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
