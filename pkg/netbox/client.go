// Package netbox is a read-only client for the NetBox REST API, covering the
// device and virtual machine list endpoints and the status endpoint.
package netbox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"
)

const (
	devicesPath         = "/api/dcim/devices/"
	virtualMachinesPath = "/api/virtualization/virtual-machines/"
	statusPath          = "/api/status/"
)

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against a single NetBox instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// Options control transport behavior of the client.
type Options struct {
	// InsecureSkipVerify disables TLS chain verification, for NetBox
	// instances behind private CAs.
	InsecureSkipVerify bool

	// Timeout bounds each HTTP request. Zero means the default of 30s.
	Timeout time.Duration
}

// tokenTransport wraps an http.RoundTripper and adds the NetBox token
// authorization header and default headers to all requests.
type tokenTransport struct {
	token     string
	transport http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req.Header.Set("Authorization", "Token "+t.token)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return t.transport.RoundTrip(req)
}

// NewClient validates the base URL and returns a client authenticating with
// the given API token.
func NewClient(baseURL, token string, opts Options) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", baseURL)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{}
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		baseURL: strings.TrimRight(parsed.String(), "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &tokenTransport{
				token:     token,
				transport: transport,
			},
		},
	}, nil
}

// BaseURL returns the normalized URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Handshake checks that a TCP connection to the NetBox host can be
// established, returning early with a clear message before any API call
// times out against an unreachable instance.
func Handshake(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	host := parsed.Hostname()
	port := parsed.Port()
	if port == "" {
		if parsed.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 5*time.Second)
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("connection to %s refused: is NetBox running?", net.JoinHostPort(host, port))
	} else if err != nil {
		return err
	}
	conn.Close()

	return nil
}

// Status retrieves the instance status document, including the NetBox version.
func (c *Client) Status(ctx context.Context) (*StatusInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var status StatusInfo
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("error decoding status response: %w", err)
	}

	return &status, nil
}

// list GETs a collection endpoint and follows its pagination links until
// exhausted, handing each page's raw results to decode.
func (c *Client) list(ctx context.Context, path string, decode func(results json.RawMessage) error) error {
	next := c.baseURL + path
	for next != "" {
		if verbose() {
			log.Printf("fetching %s", next)
		}

		page, err := c.getPage(ctx, next)
		if err != nil {
			return err
		}
		if err := decode(page.Results); err != nil {
			return err
		}

		next = ""
		if page.Next != nil && *page.Next != "" {
			next, err = c.resolveNext(*page.Next)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Client) getPage(ctx context.Context, pageURL string) (*paginatedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var page paginatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("error decoding response from %s: %w", pageURL, err)
	}

	return &page, nil
}

// resolveNext normalizes a pagination link. NetBox returns absolute URLs,
// but a bare path is accepted too (proxies rewrite these).
func (c *Client) resolveNext(next string) (string, error) {
	parsed, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("invalid pagination link %q: %w", next, err)
	}
	if parsed.IsAbs() {
		return next, nil
	}
	if !strings.HasPrefix(next, "/") {
		return "", fmt.Errorf("invalid pagination link %q", next)
	}
	return c.baseURL + next, nil
}

func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("request to %s failed with status %d", resp.Request.URL, resp.StatusCode)
	}
	return fmt.Errorf("request to %s failed with status %d: %s", resp.Request.URL, resp.StatusCode, msg)
}

func verbose() bool {
	return os.Getenv("VERBOSE") == "true"
}
