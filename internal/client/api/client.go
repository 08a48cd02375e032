// Package api implements the HTTP client for the lexico backend. It keeps
// the session token acquired at login and attaches it as a bearer header to
// every subsequent request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dbellanger/lexico/internal/common"
)

// User is the account representation returned by the backend.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Session is the login response: the account plus its bearer token.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Word mirrors the backend dictionary entry.
type Word struct {
	ID             string `json:"id"`
	SourceText     string `json:"sourceText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetText     string `json:"targetText"`
	TargetLanguage string `json:"targetLanguage"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client talks to the lexico HTTP API. It is not safe for concurrent use:
// the CLI drives it from a single goroutine.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// IsAuthenticated reports whether a login token is held.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Logout drops the held token. The backend keeps no session state, so there
// is nothing to revoke server-side.
func (c *Client) Logout() {
	c.token = ""
}

// Register creates a new account on the backend.
func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		credentials{Username: username, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		credentials{Username: username, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Me resolves the held token back to its account.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListWords(ctx context.Context) ([]*Word, error) {
	var result []*Word
	if err := c.do(ctx, http.MethodGet, "/api/word/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetWord(ctx context.Context, id string) (*Word, error) {
	var word Word
	if err := c.do(ctx, http.MethodGet, "/api/word/"+id, nil, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

func (c *Client) CreateWord(ctx context.Context, word *Word) (*Word, error) {
	var created Word
	if err := c.do(ctx, http.MethodPost, "/api/word/", word, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateWord(ctx context.Context, id string, word *Word) error {
	return c.do(ctx, http.MethodPut, "/api/word/"+id, word, nil)
}

func (c *Client) DeleteWord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/word/"+id, nil, nil)
}

// do performs one API call: marshals body, attaches the bearer token, maps
// non-2xx responses to sentinel errors and decodes the response into out.
// Transport failures map to common.ErrorUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.ErrorUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusToError(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
	}

	return nil
}

func statusToError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusServiceUnavailable:
		return common.ErrorUnavailable
	default:
		return common.ErrorInternal
	}
}
