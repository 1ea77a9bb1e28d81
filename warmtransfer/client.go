// Package warmtransfer is a minimal client for the warm transfer API. It makes
// exactly one POST per call and reports failures as failure.API errors.
package warmtransfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/BrainbaseHQ/amazon-connect-warm-transfer-lambda/failure"
)

const (
	// Endpoint is the warm transfer API url.
	Endpoint = "https://uyxceqsk5d.execute-api.us-east-1.amazonaws.com/default/warm_transfer_api"

	// Timeout bounds the whole request, including reading the body.
	Timeout = 5 * time.Second

	apiKeyHeader = "x-api-key"
)

// Request is the body sent to the warm transfer API.
type Request struct {
	PhoneNumber string      `json:"phone_number"`
	Data        interface{} `json:"data"`
}

// Client posts contact details to the warm transfer API.
type Client struct {
	APIKey   string
	Endpoint string

	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API url.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.Endpoint = url
	}
}

// WithHTTPClient overrides the http client. Its Timeout is left as provided.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used to record request failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient returns a client for the warm transfer API using apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		APIKey:     apiKey,
		Endpoint:   Endpoint,
		httpClient: &http.Client{Timeout: Timeout},
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Post sends phoneNumber and data to the API and returns the decoded JSON
// response. The response is opaque: objects, arrays and scalars are all
// returned as decoded.
//
// A missing key, a transport failure or a non 2xx status are returned as
// failure.API errors. A success response that isn't valid JSON is returned as
// a plain error.
func (c *Client) Post(ctx context.Context, phoneNumber string, data interface{}) (interface{}, error) {
	if c.APIKey == "" {
		return nil, failure.APIError("Missing API key")
	}

	payload, err := json.Marshal(Request{PhoneNumber: phoneNumber, Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal warm transfer request")
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, c.requestFailed(err)
	}

	req.Header.Set(apiKeyHeader, c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestFailed(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, c.requestFailed(err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.requestFailed(err)
	}

	var result interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode warm transfer response")
	}

	return result, nil
}

// requestFailed logs err and tags it as an API error.
func (c *Client) requestFailed(err error) error {
	c.log.WithError(err).Errorf("API request failed: %v", err)
	return failure.Wrapf(err, failure.API, "API request failed")
}

// checkStatus returns an error for any non 2xx response, worded like
// "404 Client Error: Not Found for url: https://...".
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	class := "Server"
	if resp.StatusCode < 500 {
		class = "Client"
	}

	return fmt.Errorf("%d %s Error: %s for url: %s", resp.StatusCode, class, http.StatusText(resp.StatusCode), resp.Request.URL)
}
