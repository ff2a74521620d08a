package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/greeter/internal/client/models"
)

// requestTimeout bounds a single API call.
const requestTimeout = 10 * time.Second

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *APIClient) Register(ctx context.Context, username, password string) (*models.User, error) {
	u := &models.User{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", credentials{username, password}, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *APIClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	u := &models.User{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{username, password}, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *APIClient) Greetings(ctx context.Context) ([]*models.Greeting, error) {
	items := make([]*models.Greeting, 0)
	if err := c.do(ctx, http.MethodGet, "/api/greetings", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// do sends body as JSON and decodes a 2xx response into out. Transport
// failures become ErrUnavailable; non-2xx responses become *APIError.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return newAPIError(resp.StatusCode, eb.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}
