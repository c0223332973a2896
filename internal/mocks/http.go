// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"io"
	"net/http"
)

// MockHTTPClient is a mock implementation of the compute.HTTPClient interface.
//
// This allows testing API client logic without a live server.
type MockHTTPClient struct {
	// DoFunc is called by Do if not nil
	DoFunc func(req *http.Request) (*http.Response, error)

	// Track calls for verification in tests
	DoCalls int

	// Requests records every request passed to Do, in order.
	Requests []*http.Request
}

// Do executes an HTTP request.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.DoCalls++
	m.Requests = append(m.Requests, req)
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return JSONResponse(http.StatusOK, "{}"), nil
}

// NewMockHTTPClient creates a new mock HTTP client with default behavior.
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{}
}

// JSONResponse builds an *http.Response with the given status code and a JSON
// body, suitable for returning from DoFunc.
func JSONResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}
