package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/routerctl/routerctl/internal/errors"
)

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the cloud network routers REST API.
//
// All methods are safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	token      string
}

// NewClient creates a routers API client for the given endpoint.
//
// token may be empty for unauthenticated endpoints such as a local emulator.
// If httpClient is nil, a default HTTP client is used. Pass a client with a
// Timeout set to bound requests independently of the context deadline.
func NewClient(baseURL, token string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

// requestForClient is a generic helper to run one API request and decode the
// JSON response.
func requestForClient[T any](c *Client, ctx context.Context, method, path string, payload interface{}) (T, error) {
	var result T

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return result, errors.NewInternalError("failed to encode request body", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return result, errors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, errors.NewAPIError(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, errors.NewAPIError("failed to read response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, decodeAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, errors.NewAPIError(fmt.Sprintf("failed to unmarshal response from %s", path), err)
	}

	return result, nil
}

// decodeAPIError maps a non-2xx response to a coded error, preferring the
// message from the API error envelope when one is present.
func decodeAPIError(statusCode int, data []byte) error {
	message := fmt.Sprintf("unexpected status code %d", statusCode)

	var envelope APIErrorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	if statusCode == http.StatusNotFound {
		return errors.NewNotFoundError(message, nil)
	}
	return errors.NewAPIError(message, nil)
}

func routersPath(project, region string) string {
	return fmt.Sprintf("/compute/v1/projects/%s/regions/%s/routers",
		url.PathEscape(project), url.PathEscape(region))
}

// ListRouters returns all routers of a project region.
func (c *Client) ListRouters(ctx context.Context, project, region string) ([]Router, error) {
	list, err := requestForClient[RouterList](c, ctx, http.MethodGet, routersPath(project, region), nil)
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// GetRouter fetches a single router resource.
func (c *Client) GetRouter(ctx context.Context, project, region, name string) (*Router, error) {
	router, err := requestForClient[Router](c, ctx, http.MethodGet,
		routersPath(project, region)+"/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return &router, nil
}

// PatchRouter writes back a modified router resource and returns the stored
// result. Callers fetch the router first, change only the fields they mean to
// update, and send the whole object back, so unrelated state is preserved.
func (c *Client) PatchRouter(ctx context.Context, project, region string, router *Router) (*Router, error) {
	updated, err := requestForClient[Router](c, ctx, http.MethodPatch,
		routersPath(project, region)+"/"+url.PathEscape(router.Name), router)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
