package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const (
	// DefaultAPIURL is the monday.com GraphQL endpoint
	DefaultAPIURL = "https://api.monday.com/v2"
	// DefaultAPIVersion pins the API schema version sent in the API-Version header
	DefaultAPIVersion = "2024-10"
	// DefaultTimeout bounds a single HTTP round-trip
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 4096
)

// Gateway executes GraphQL documents against the remote API
type Gateway interface {
	Execute(ctx context.Context, doc *query.Document) (core.Response, error)
}

// Config configures the HTTP client
type Config struct {
	APIURL            string
	APIKey            string
	APIVersion        string
	Timeout           time.Duration
	ValidateDocuments bool
}

// Client is the HTTP implementation of Gateway
type Client struct {
	config     Config
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new monday.com API client
func NewClient(config Config, opts ...Option) *Client {
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestBody struct {
	Query string `json:"query"`
}

type apiError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Execute sends the document and returns the parsed response body
func (c *Client) Execute(ctx context.Context, doc *query.Document) (core.Response, error) {
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return nil, core.Errorf(core.ErrorCodeInvalidDocument, "empty document")
	}
	if c.config.ValidateDocuments {
		if err := CheckSyntax(doc); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(requestBody{Query: doc.Text})
	if err != nil {
		return nil, core.NewError(fmt.Errorf("failed to encode request: %w", err), core.ErrorCodeTransportFailed, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, core.NewError(fmt.Errorf("failed to create request: %w", err), core.ErrorCodeTransportFailed, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("API-Version", c.config.APIVersion)

	logger.Debug("executing graphql document", "kind", doc.Kind, "bytes", len(doc.Text))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, core.NewError(fmt.Errorf("failed to execute request: %w", err), core.ErrorCodeTransportFailed, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, core.NewError(
			fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw))),
			core.ErrorCodeTransportFailed,
			map[string]any{"status": resp.StatusCode},
		)
	}

	var parsed core.Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, core.NewError(fmt.Errorf("failed to decode response: %w", err), core.ErrorCodeInvalidResponse, nil)
	}

	if err := responseError(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// responseError extracts GraphQL-level errors. monday.com reports them with a
// 200 status, either as an "errors" array or as error_message/error_code.
func responseError(resp core.Response) error {
	if raw, ok := resp["errors"].([]any); ok && len(raw) > 0 {
		messages := make([]string, 0, len(raw))
		for _, entry := range raw {
			var e apiError
			if data, err := json.Marshal(entry); err == nil && json.Unmarshal(data, &e) == nil && e.Message != "" {
				messages = append(messages, e.Message)
			}
		}
		if len(messages) == 0 {
			messages = append(messages, "unknown error")
		}
		return core.NewError(
			fmt.Errorf("graphql errors: %s", strings.Join(messages, "; ")),
			core.ErrorCodeAPIError,
			map[string]any{"count": len(raw)},
		)
	}
	if msg, ok := resp["error_message"].(string); ok && msg != "" {
		metadata := map[string]any{}
		if code, ok := resp["error_code"].(string); ok {
			metadata["error_code"] = code
		}
		return core.NewError(fmt.Errorf("api error: %s", msg), core.ErrorCodeAPIError, metadata)
	}
	return nil
}

// CheckSyntax parses the document and reports GraphQL syntax errors without
// validating it against a schema.
func CheckSyntax(doc *query.Document) error {
	parsed, err := parser.ParseQuery(&ast.Source{Name: "document", Input: doc.Text})
	if err != nil {
		return core.NewError(fmt.Errorf("malformed graphql document: %w", err), core.ErrorCodeInvalidDocument, nil)
	}
	if len(parsed.Operations) != 1 {
		return core.Errorf(core.ErrorCodeInvalidDocument, "expected exactly one operation, got %d", len(parsed.Operations))
	}
	if string(parsed.Operations[0].Operation) != string(doc.Kind) {
		return core.Errorf(core.ErrorCodeInvalidDocument,
			"document kind %s does not match operation %s", doc.Kind, parsed.Operations[0].Operation)
	}
	return nil
}
