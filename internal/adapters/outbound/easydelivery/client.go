package easydelivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/rs/zerolog"
)

// OrderPath is the endpoint creating an order and returning its labels.
const OrderPath = "/api/order"

// maxErrorBody bounds how much of a failed response ends up in the error.
const maxErrorBody = 512

// Client implements domain.LabelAPI over HTTP.
type Client struct {
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a client. A nil httpClient uses a plain http.Client, so the
// request runs without a timeout of its own.
func New(httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient, log: log}
}

// OrderURL resolves OrderPath against the configured base URL. The path of
// the base URL is replaced, not extended.
func OrderURL(apiURL string) (string, error) {
	base, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("parsing api url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("api url %q must be absolute", apiURL)
	}
	return base.ResolveReference(&url.URL{Path: OrderPath}).String(), nil
}

// CreateOrder posts the shipment and returns the JSON body of a 2xx answer.
// It makes exactly one attempt. Every failure is a *domain.APIRequestError.
func (c *Client) CreateOrder(ctx context.Context, creds domain.Credentials, req domain.ShipmentRequest) ([]byte, error) {
	endpoint, err := OrderURL(creds.APIURL)
	if err != nil {
		return nil, c.fail(0, err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, c.fail(0, fmt.Errorf("encoding request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, c.fail(0, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+creds.AuthToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.log.Info().
		Str("url", endpoint).
		Int("parcels", len(req.Parcels)).
		Str("recipient", req.Recipient.Name).
		Msg("requesting Easy Delivery API")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(resp.StatusCode, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(resp.StatusCode, fmt.Errorf("%s for url %s: %s", resp.Status, endpoint, truncate(body, maxErrorBody)))
	}

	if !json.Valid(body) {
		return nil, c.fail(resp.StatusCode, fmt.Errorf("response is not valid JSON: %s", truncate(body, maxErrorBody)))
	}

	return body, nil
}

func (c *Client) fail(status int, err error) error {
	c.log.Error().Err(err).Int("status", status).Msg("API request failed")
	return &domain.APIRequestError{StatusCode: status, Err: err}
}

func truncate(b []byte, n int) string {
	b = bytes.TrimSpace(b)
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
