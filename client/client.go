// Package client is the ordering-side SDK for the POS API: session
// handling, the cart, order submission with partial checkout, and the
// polling state for the kitchen dashboard and sales summary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"restaurant-pos-api/models"
)

// Client talks to the POS API. The session credential is a cookie held in
// the client's jar, carried automatically on every call.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// do issues a JSON request and decodes the JSON response into out (when
// non-nil). HTTP 401 maps to ErrUnauthorized, other non-2xx statuses to
// *APIError carrying the server's error message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Menu fetches the catalog, category → item list. Fetched once per
// browsing session; items are immutable within it.
func (c *Client) Menu(ctx context.Context) (models.Menu, error) {
	var menu models.Menu
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}
