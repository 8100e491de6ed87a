package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request describes one HTTP round trip. Body is sent only when HasBody is set.
type Request struct {
	Method  string
	Host    string
	Path    string
	Headers map[string]string
	Body    string
	HasBody bool
}

// Response is what a transport hands back on a completed round trip,
// regardless of status code.
type Response struct {
	Status int
	Body   string
}

// Transport performs a single request. An error means the round trip did not
// complete (DNS, connection, TLS, read failure); HTTP error statuses are not
// errors at this level.
type Transport interface {
	Request(ctx context.Context, req Request) (Response, error)
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultHTTPTimeout = 30 * time.Second

// HTTPTransport is the production Transport on top of net/http.
type HTTPTransport struct {
	Client    HTTPDoer
	Scheme    string // defaults to "https"
	UserAgent string
}

// NewHTTPTransport creates a transport with its own client and timeout.
func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPTransport{
		Client:    &http.Client{Timeout: timeout},
		Scheme:    "https",
		UserAgent: userAgent,
	}
}

func (t *HTTPTransport) Request(ctx context.Context, r Request) (Response, error) {
	scheme := t.Scheme
	if scheme == "" {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host}
	target := u.String() + r.Path

	var body io.Reader
	if r.HasBody {
		body = strings.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	if t.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", r.Method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}
	return Response{Status: resp.StatusCode, Body: string(data)}, nil
}
