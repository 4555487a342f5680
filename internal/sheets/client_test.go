package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realtool_backend/platform/logger"
)

func TestFetchValues_ReturnsGrid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/spreadsheet-123/values/") {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "api-key" {
			t.Fatalf("expected api key in query, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A1:C3","values":[["owner_name","phone","zip"],["Jane Doe","6502530000","75001"]]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(logger.New("development"), server.URL)

	values, err := client.FetchValues(context.Background(), "spreadsheet-123", "api-key", "Sheet1", "A:Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(values))
	}
	if values[0][0] != "owner_name" || values[1][0] != "Jane Doe" {
		t.Fatalf("unexpected grid contents %v", values)
	}
}

func TestFetchValues_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(logger.New("development"), server.URL)

	if _, err := client.FetchValues(context.Background(), "spreadsheet-123", "bad-key", "Sheet1", "A:Z"); err == nil {
		t.Fatal("expected error for non-OK status")
	}
}

func TestFetchValues_EmptySheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A1:Z1"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(logger.New("development"), server.URL)

	values, err := client.FetchValues(context.Background(), "spreadsheet-123", "api-key", "Sheet1", "A:Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no rows, got %d", len(values))
	}
}
