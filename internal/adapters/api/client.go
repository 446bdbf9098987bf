package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kit-coca/coca-cli/internal/domain"
	"github.com/kit-coca/coca-cli/internal/ports"
)

const maxEnvelopeBytes = 1 << 20

// envelope is the {code, message, data} wrapper every backend response
// uses. code 200 is success, 401 is an expired access token.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client issues credentialed calls against the scheduling backend and
// classifies every response into a domain.Outcome. It never mutates the
// token store and never lets a transport error escape as a raw error.
type Client struct {
	BaseURL        string
	Tokens         ports.TokenStore
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

// Execute runs one call. No access token and no anonymous flag means
// Unauthorized without touching the network.
func (c *Client) Execute(ctx context.Context, spec domain.RequestSpec) domain.Outcome {
	session, err := c.Tokens.Get(ctx)
	if err != nil {
		return domain.Failure(fmt.Errorf("load session: %w", err))
	}
	if !session.Authenticated() && !spec.AllowAnonymous {
		return domain.Unauthorized()
	}

	endpoint, err := buildAPIURL(c.BaseURL, spec.Path)
	if err != nil {
		return domain.Failure(err)
	}
	if len(spec.Query) > 0 {
		endpoint += "?" + spec.Query.Encode()
	}

	var body io.Reader
	if spec.Body != nil {
		encoded, err := json.Marshal(spec.Body)
		if err != nil {
			return domain.Failure(fmt.Errorf("encode request body: %w", err))
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, spec.Method, endpoint, body)
	if err != nil {
		return domain.Failure(fmt.Errorf("create request: %w", err))
	}
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.Failure(&domain.NetworkError{Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.Unauthorized()
	}

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEnvelopeBytes)).Decode(&env); err != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return domain.Failure(&domain.ApplicationError{Code: resp.StatusCode})
		}
		return domain.Failure(fmt.Errorf("decode envelope: %w", err))
	}

	switch env.Code {
	case http.StatusOK:
		return domain.Success(env.Data)
	case http.StatusUnauthorized:
		return domain.Unauthorized()
	default:
		return domain.Failure(&domain.ApplicationError{Code: env.Code, Message: env.Message})
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
