// Package api is the HTTP client of the foods collection.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-restaurant/models"
)

// Client issues single-shot requests against a foods endpoint. It never
// retries.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means requests
// are only bounded by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) foodURL(id int64) string {
	return c.BaseURL + "/foods/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, url, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]models.Food, error) {
	foods := []models.Food{}
	if err := c.do(ctx, http.MethodGet, c.BaseURL+"/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Create posts a draft and returns it with the server-assigned id. Any id
// on the draft is not sent.
func (c *Client) Create(ctx context.Context, food models.Food) (models.Food, error) {
	food.ID = 0
	var created models.Food
	if err := c.do(ctx, http.MethodPost, c.BaseURL+"/foods", food, &created); err != nil {
		return models.Food{}, err
	}
	return created, nil
}

// Update puts every field of food under id.
func (c *Client) Update(ctx context.Context, id int64, food models.Food) (models.Food, error) {
	var updated models.Food
	if err := c.do(ctx, http.MethodPut, c.foodURL(id), food, &updated); err != nil {
		return models.Food{}, err
	}
	return updated, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.foodURL(id), nil, nil)
}
