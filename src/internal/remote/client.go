// Package remote calls named operations on the DNS/DHCP server HTTP API.
//
// Every call sends string parameters and the session token, and receives a
// tagged payload:
//
//	{"status": "ok", "response": {...}}
//	{"status": "error", "errorMessage": "..."}
//	{"status": "invalid-token"}
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/keen-console/src/internal/log"
)

// maxQueryLength is the encoded parameter length above which a call is sent
// as a POST form instead of a GET query string.
const maxQueryLength = 2000

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Session carries the credential for calls. It is passed explicitly to
// every call and never stored in the client.
type Session struct {
	Token string
}

// Response is the "response" member of a successful call.
type Response struct {
	Raw []byte
}

// Get returns the value at a gjson path inside the response.
func (r Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// Client sends operations to one server.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	path       *fasttemplate.Template
}

// NewClient returns a client for baseURL. operationPath is a template with
// an {{operation}} variable, e.g. "/api/{{operation}}". If httpClient is nil,
// an http.Client with timeout is used.
func NewClient(baseURL, operationPath string, timeout time.Duration, httpClient HTTPClient) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	tmpl, err := fasttemplate.NewTemplate(operationPath, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid operation path: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       tmpl,
	}, nil
}

// Endpoint returns the URL an operation is sent to, without parameters.
func (c *Client) Endpoint(operation string) string {
	return c.baseURL + c.path.ExecuteString(map[string]interface{}{
		"operation": strings.Trim(operation, "/"),
	})
}

// Call sends operation with params and returns the "response" member of a
// successful reply. A reply with status "error" is returned as *ServerError,
// "invalid-token" as ErrInvalidToken.
func (c *Client) Call(ctx context.Context, s Session, operation string, params map[string]string) (Response, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	if s.Token != "" {
		values.Set("token", s.Token)
	}

	req, err := c.newRequest(ctx, operation, values)
	if err != nil {
		return Response{}, err
	}

	log.Debugf("Calling %s %s", req.Method, c.Endpoint(operation))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to call %s: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, &StatusError{Operation: operation, StatusCode: resp.StatusCode}
	}

	return decodeResponse(operation, body)
}

func (c *Client) newRequest(ctx context.Context, operation string, values url.Values) (*http.Request, error) {
	endpoint := c.Endpoint(operation)
	encoded := values.Encode()

	if len(encoded) <= maxQueryLength {
		if encoded != "" {
			endpoint += "?" + encoded
		}
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func decodeResponse(operation string, body []byte) (Response, error) {
	if !gjson.ValidBytes(body) {
		return Response{}, fmt.Errorf("invalid JSON in response to %s", operation)
	}

	switch status := gjson.GetBytes(body, "status").String(); status {
	case "ok":
		return Response{Raw: []byte(gjson.GetBytes(body, "response").Raw)}, nil
	case "error":
		return Response{}, &ServerError{
			Operation: operation,
			Message:   gjson.GetBytes(body, "errorMessage").String(),
		}
	case "invalid-token":
		return Response{}, ErrInvalidToken
	default:
		return Response{}, fmt.Errorf("unexpected status %q in response to %s", status, operation)
	}
}
