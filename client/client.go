// Package client is the Go API client for the Haven Estates backend.
// The session token lives in the cookie jar; callers never see or parse
// it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("client: not authenticated")
	ErrNotFound     = errors.New("client: not found")
)

// Account is the public account representation returned by the server.
type Account struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Client talks to the backend API. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client with its own cookie jar so the session cookie is
// carried automatically after Login.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the admin account.
func (c *Client) Register(ctx context.Context, email, password string) (*Account, error) {
	resp, err := c.postJSON(ctx, "/api/auth/register", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("client: register failed with status %d", resp.StatusCode)
	}

	var acc Account
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// Login authenticates; on success the session cookie lands in the jar.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.postJSON(ctx, "/api/auth/login", credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("client: login failed with status %d", resp.StatusCode)
	}
}

// Logout clears the session on both sides.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.postJSON(ctx, "/api/auth/logout", struct{}{})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: logout failed with status %d", resp.StatusCode)
	}
	return nil
}

// Me returns the logged-in account.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var acc Account
		if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
			return nil, err
		}
		return &acc, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("client: me failed with status %d", resp.StatusCode)
	}
}
