// Package ynab is a thin client for the YNAB v1 REST API. A client is
// constructed per request with the caller's bearer token and is never
// shared or pooled across identities.
package ynab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public YNAB API endpoint.
const DefaultBaseURL = "https://api.ynab.com/v1"

// DefaultTimeout bounds every outbound call so a hung upstream cannot hang
// the corresponding request forever.
const DefaultTimeout = 30 * time.Second

// Client is the concrete implementation of Service backed by net/http.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client for the public API with the default timeout.
func New(token string) *Client {
	return NewWithConfig(DefaultBaseURL, DefaultTimeout, token)
}

// NewWithConfig creates a Client against an arbitrary endpoint. Tests point
// it at a local fake server.
func NewWithConfig(baseURL string, timeout time.Duration, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetBudgets lists all budgets, with nested accounts when includeAccounts
// is set.
func (c *Client) GetBudgets(ctx context.Context, includeAccounts bool) ([]BudgetSummary, error) {
	q := url.Values{}
	if includeAccounts {
		q.Set("include_accounts", "true")
	}

	var payload struct {
		Budgets []BudgetSummary `json:"budgets"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgets", q, nil, &payload); err != nil {
		return nil, fmt.Errorf("GetBudgets: %w", err)
	}

	return payload.Budgets, nil
}

// GetTransactionsByAccount lists the transactions of one account. A
// non-zero lastKnowledge requests only transactions changed since that
// cursor.
func (c *Client) GetTransactionsByAccount(ctx context.Context, budgetID, accountID string, lastKnowledge int64) (*TransactionsSnapshot, error) {
	q := url.Values{}
	if lastKnowledge != 0 {
		q.Set("last_knowledge_of_server", strconv.FormatInt(lastKnowledge, 10))
	}

	path := fmt.Sprintf("/budgets/%s/accounts/%s/transactions", url.PathEscape(budgetID), url.PathEscape(accountID))

	var payload TransactionsSnapshot
	if err := c.do(ctx, http.MethodGet, path, q, nil, &payload); err != nil {
		return nil, fmt.Errorf("GetTransactionsByAccount: %w", err)
	}

	return &payload, nil
}

// UpdateTransactions submits a batch of transaction patches in one call.
// Partial-failure semantics are the API's; the batch is never split or
// retried here.
func (c *Client) UpdateTransactions(ctx context.Context, budgetID string, transactions []SaveTransactionWithID) (*SaveTransactionsResult, error) {
	body := struct {
		Transactions []SaveTransactionWithID `json:"transactions"`
	}{Transactions: transactions}

	path := fmt.Sprintf("/budgets/%s/transactions", url.PathEscape(budgetID))

	var payload SaveTransactionsResult
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &payload); err != nil {
		return nil, fmt.Errorf("UpdateTransactions: %w", err)
	}

	return &payload, nil
}

// do issues one API call and decodes the `data` envelope into out. Non-2xx
// responses are decoded into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}
