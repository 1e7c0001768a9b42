package ssg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonesrussell/ssgclient/internal/httpclient"
	"github.com/jonesrussell/ssgclient/internal/logger"
)

const (
	// DefaultBaseURL is the production SSG-WSG API origin.
	DefaultBaseURL = "https://api.ssg-wsg.sg"
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second
	// DefaultAPIVersion is the x-api-version header sent when an endpoint
	// does not pin its own version.
	DefaultAPIVersion = "v1"

	// versionHeader is the API version request header.
	versionHeader = "x-api-version"

	minErrorStatusCode = 400
	minKeywordLength   = 3
)

// Client is an HTTP client for the SSG-WSG APIs. All endpoints authenticate
// through the client certificate carried by the underlying transport; the
// client itself only builds URLs, sets the version header, and decodes the
// error envelope.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	defaultVersion string
	logger         logger.Interface
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API client.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout for API requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDefaultVersion sets the default x-api-version header value.
func WithDefaultVersion(version string) Option {
	return func(c *Client) {
		c.defaultVersion = version
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(log logger.Interface) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// WithCertificate configures the underlying HTTP client with the given
// client certificate (mutual TLS). Returns the option and any error from
// loading the certificate material.
func WithCertificate(certCfg httpclient.CertificateConfig, timeout time.Duration) (Option, error) {
	client, err := httpclient.NewClientWithCertificate(certCfg, timeout)
	if err != nil {
		return nil, err
	}
	return WithHTTPClient(client), nil
}

// NewClient creates a new SSG-WSG API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL: DefaultBaseURL,
		httpClient: httpclient.NewClient(&httpclient.ClientConfig{
			Timeout: DefaultTimeout,
		}),
		defaultVersion: DefaultAPIVersion,
		logger:         logger.NewNoOp(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Courses returns the course directory service.
func (c *Client) Courses() *CoursesService {
	return &CoursesService{client: c}
}

// Skills returns the skills framework service.
func (c *Client) Skills() *SkillsService {
	return &SkillsService{client: c}
}

// get issues a GET request against path with the given query parameters.
// version selects the x-api-version header; an empty version falls back to
// the client default, and versionNone suppresses the header entirely.
func (c *Client) get(ctx context.Context, path string, params url.Values, version string) (*Response, error) {
	requestURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("failed to construct URL: %w", err)
	}
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	switch version {
	case versionNone:
		// Endpoint takes no version header
	case "":
		req.Header.Set(versionHeader, c.defaultVersion)
	default:
		req.Header.Set(versionHeader, version)
	}

	c.logger.Debug("Requesting SSG-WSG API",
		"endpoint", path,
		"params", params.Encode(),
		"version", req.Header.Get(versionHeader))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Provide a more helpful error message for connection issues
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Op == "dial" {
			return nil, fmt.Errorf("failed to connect to %s: %w. "+
				"Check network connectivity and certificate configuration", c.baseURL, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}

	if resp.StatusCode >= minErrorStatusCode {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       body,
		}
		var envelope errorEnvelope
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil {
			apiErr.Code = envelope.Code.String()
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			} else {
				apiErr.Message = envelope.Error
			}
		}
		c.logger.Error("SSG-WSG API request failed",
			"endpoint", path,
			"status", resp.StatusCode)
		return nil, apiErr
	}

	c.logger.Debug("SSG-WSG API request succeeded",
		"endpoint", path,
		"status", resp.StatusCode,
		"bytes", len(body))

	return &Response{
		Raw:        body,
		StatusCode: resp.StatusCode,
		Endpoint:   path,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

// versionNone suppresses the x-api-version header. The skills framework
// endpoints take no version header at all.
const versionNone = "-"

// validateKeyword enforces the API's minimum keyword length.
func validateKeyword(keyword string) error {
	if len(keyword) < minKeywordLength {
		return fmt.Errorf("%w: %q", ErrKeywordTooShort, keyword)
	}
	return nil
}
