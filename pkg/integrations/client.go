package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/metacpan/pkg/buildinfo"
	errs "github.com/matzehuels/metacpan/pkg/errors"
	"github.com/matzehuels/metacpan/pkg/observability"
)

// Client provides shared HTTP functionality for registry API clients.
// It sends GET requests, maps response statuses to coded errors and logs
// each outgoing request at info level.
//
// A Client holds no mutable state; it is safe for concurrent use to the
// extent the underlying *http.Client is.
type Client struct {
	http    *http.Client
	logger  *log.Logger
	headers map[string]string
}

// NewClient creates a Client sending requests through httpClient.
// A nil httpClient uses [NewHTTPClient]; a nil logger uses log.Default().
// Headers are applied to all requests; a User-Agent is added unless
// headers already sets one.
func NewClient(httpClient *http.Client, logger *log.Logger, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	h := map[string]string{
		"User-Agent": buildinfo.UserAgent(),
		"Accept":     "application/json",
	}
	for k, v := range headers {
		h[k] = v
	}
	return &Client{
		http:    httpClient,
		logger:  logger,
		headers: h,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
//
// Returns:
//   - [ErrNotFound] (code NOT_FOUND) for a 404 response; the body is not read
//   - [ErrHTTP] (code HTTP_ERROR) for transport failures, other non-2xx
//     statuses, unreadable bodies and JSON decoding failures
func (c *Client) Get(ctx context.Context, u *url.URL, v any) error {
	body, err := c.GetBytes(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errs.Wrap(errs.ErrCodeHTTP, err, "decode response from %s", u)
	}
	return nil
}

// GetBytes performs an HTTP GET request and returns the raw 2xx response body.
// Errors are classified as for [Client.Get].
func (c *Client) GetBytes(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeURL, err, "build request for %s", u)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.loggerFor(ctx).Infof("GET %s", u)

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		return nil, errs.Wrap(errs.ErrCodeHTTP, err, "GET %s", u)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp, u); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeHTTP, err, "read response from %s", u).WithStatus(resp.StatusCode)
	}
	return body, nil
}

func (c *Client) loggerFor(ctx context.Context) *log.Logger {
	if l := LoggerFromContext(ctx); l != nil {
		return l
	}
	if c.logger != nil {
		return c.logger
	}
	return log.Default()
}

func checkStatus(resp *http.Response, u *url.URL) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errs.New(errs.ErrCodeNotFound, "%s", u).WithStatus(code)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody+1))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			return errs.New(errs.ErrCodeHTTP, "GET %s: status %d", u, code).WithStatus(code)
		}
		return errs.New(errs.ErrCodeHTTP, "GET %s: status %d: %s", u, code, truncate(msg, maxErrorBody)).WithStatus(code)
	}
}
