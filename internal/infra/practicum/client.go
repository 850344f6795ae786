// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"homework_status_bot/internal/domain/homework"

	"github.com/bytedance/sonic"
)

// Endpoint is the homework statuses API.
const Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

var fastJSON = sonic.ConfigStd

// Client fetches homework statuses for one OAuth token.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the production endpoint. httpClient may be nil,
// in which case http.DefaultClient is used.
func NewClient(token string, httpClient *http.Client) *Client {
	return NewClientWithEndpoint(Endpoint, token, httpClient)
}

func NewClientWithEndpoint(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, token: token, httpClient: httpClient}
}

// GetAPIAnswer requests statuses changed since from (Unix seconds) and returns
// the decoded JSON body without checking its shape.
func (c *Client) GetAPIAnswer(ctx context.Context, from int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", homework.ErrAPIUnreachable, c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", homework.ErrUnexpectedStatusCode, c.endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", homework.ErrAPIUnreachable, err)
	}

	var raw any
	if err := fastJSON.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", homework.ErrMalformedResponse, err)
	}
	return raw, nil
}
