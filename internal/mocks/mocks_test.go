package mocks

import (
	"io"
	"net/http"
	"testing"
)

// TestMockHTTPClient_DefaultBehavior verifies that the mock returns sensible defaults
func TestMockHTTPClient_DefaultBehavior(t *testing.T) {
	mock := NewMockHTTPClient()

	req, _ := http.NewRequest(http.MethodGet, "http://example.test/routers", nil)
	resp, err := mock.Do(req)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 by default, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "{}" {
		t.Errorf("Expected empty JSON object body, got %q", string(body))
	}
}

func TestMockHTTPClient_RecordsRequests(t *testing.T) {
	mock := NewMockHTTPClient()
	mock.DoFunc = func(req *http.Request) (*http.Response, error) {
		return JSONResponse(http.StatusNotFound, `{}`), nil
	}

	req1, _ := http.NewRequest(http.MethodGet, "http://example.test/a", nil)
	req2, _ := http.NewRequest(http.MethodPatch, "http://example.test/b", nil)
	mock.Do(req1)
	mock.Do(req2)

	if mock.DoCalls != 2 {
		t.Errorf("Expected 2 calls, got %d", mock.DoCalls)
	}
	if len(mock.Requests) != 2 || mock.Requests[1].Method != http.MethodPatch {
		t.Errorf("Expected recorded requests, got %+v", mock.Requests)
	}
}

func TestJSONResponse(t *testing.T) {
	resp := JSONResponse(http.StatusConflict, `{"error":{}}`)

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"error":{}}` {
		t.Errorf("Expected body to round-trip, got %q", string(body))
	}
}

// TestMockPrompter_DefaultBehavior verifies that the mock confirms by default
func TestMockPrompter_DefaultBehavior(t *testing.T) {
	mock := NewMockPrompter()

	ok, err := mock.Confirm("proceed?")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Error("Expected default confirm to be true")
	}
}

func TestMockPrompter_RecordsMessages(t *testing.T) {
	mock := NewMockPrompter()
	mock.ConfirmFunc = func(message string) (bool, error) {
		return false, nil
	}

	ok, _ := mock.Confirm("first")
	mock.Confirm("second")

	if ok {
		t.Error("Expected custom func to decline")
	}
	if mock.ConfirmCalls != 2 {
		t.Errorf("Expected 2 calls, got %d", mock.ConfirmCalls)
	}
	if len(mock.Messages) != 2 || mock.Messages[0] != "first" {
		t.Errorf("Expected recorded messages, got %v", mock.Messages)
	}
}
