package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/gateway"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(t *testing.T) *query.Document {
	t.Helper()
	doc, err := query.ListBoards(&query.ListBoardsParams{Limit: 1})
	require.NoError(t, err)
	return doc
}

func newClient(url string, validate bool) *gateway.Client {
	return gateway.NewClient(gateway.Config{
		APIURL:            url,
		APIKey:            "secret-token",
		ValidateDocuments: validate,
	})
}

func TestClient_Execute(t *testing.T) {
	logger.Disable()
	defer logger.Enable()
	ctx := context.Background()

	t.Run("Should post the document with auth and version headers", func(t *testing.T) {
		var received struct {
			Query string `json:"query"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "secret-token", r.Header.Get("Authorization"))
			assert.Equal(t, gateway.DefaultAPIVersion, r.Header.Get("API-Version"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"data": {"boards": [{"id": "1"}]}, "account_id": 7}`))
		}))
		defer srv.Close()

		doc := newDoc(t)
		resp, err := newClient(srv.URL, true).Execute(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, doc.Text, received.Query)
		boards, ok := resp.Data()["boards"].([]any)
		require.True(t, ok)
		assert.Len(t, boards, 1)
	})

	t.Run("Should map non-2xx statuses to transport errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Not Authenticated", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL, false).Execute(ctx, newDoc(t))
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeTransportFailed))
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Not Authenticated")
	})

	t.Run("Should map graphql errors to API errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"errors": [{"message": "Parse error on \"}\""}, {"message": "second"}], "data": null}`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL, false).Execute(ctx, newDoc(t))
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeAPIError))
		assert.Contains(t, err.Error(), "second")
	})

	t.Run("Should map error_message bodies to API errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error_message": "Complexity budget exhausted", "error_code": "ComplexityException"}`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL, false).Execute(ctx, newDoc(t))
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeAPIError))
		assert.Contains(t, err.Error(), "ComplexityException")
	})

	t.Run("Should map undecodable bodies to invalid responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL, false).Execute(ctx, newDoc(t))
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidResponse))
	})

	t.Run("Should fail malformed documents before any request", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"data": {}}`))
		}))
		defer srv.Close()

		bad := &query.Document{Kind: core.OperationQuery, Text: "query { boards(ids: ) { id }"}
		_, err := newClient(srv.URL, true).Execute(ctx, bad)
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidDocument))

		_, err = newClient(srv.URL, true).Execute(ctx, &query.Document{Kind: core.OperationQuery})
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidDocument))
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("Should honor context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		cancelCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err := newClient(srv.URL, false).Execute(cancelCtx, newDoc(t))
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeTransportFailed))
	})

	t.Run("Should use a custom http client", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"data": {}}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(gateway.Config{APIURL: srv.URL}, gateway.WithHTTPClient(srv.Client()))
		_, err := client.Execute(ctx, newDoc(t))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCheckSyntax(t *testing.T) {
	t.Run("Should accept built documents", func(t *testing.T) {
		assert.NoError(t, gateway.CheckSyntax(newDoc(t)))
	})
	t.Run("Should reject a kind mismatch", func(t *testing.T) {
		doc := &query.Document{Kind: core.OperationMutation, Text: "query { boards { id } }"}
		err := gateway.CheckSyntax(doc)
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidDocument))
	})
	t.Run("Should reject several operations", func(t *testing.T) {
		doc := &query.Document{Kind: core.OperationQuery, Text: "query a { boards { id } } query b { docs { id } }"}
		err := gateway.CheckSyntax(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one operation")
	})
}
