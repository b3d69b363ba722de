// Package gateway speaks to the two upstream GraphQL services: the
// analytics gateway (aggregations, buzzes) and the CMS identity gateway
// (the caller's project graph).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sovinsight/internal/apperr"
)

// Credentials are the caller's auth tokens, passed through unchanged on
// every upstream request.
type Credentials struct {
	Token        string
	RefreshToken string
}

type Client struct {
	gatewayURL string
	cmsURL     string
	httpClient *http.Client
}

func NewClient(gatewayURL, cmsURL string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		cmsURL:     cmsURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// post sends one GraphQL request and decodes the response into out.
// Network failures and non-2xx statuses surface as UpstreamUnavailable,
// undecodable bodies as InvalidResponseShape.
func (c *Client) post(ctx context.Context, url string, creds Credentials, payload graphQLRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gateway encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	setHeaders(req, creds)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.UpstreamUnavailable("failed to reach upstream gateway", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return apperr.UpstreamUnavailable(
			fmt.Sprintf("upstream gateway returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.InvalidResponseShape("invalid response structure", err)
	}
	return nil
}

// The upstream gateway rejects requests without a browser-shaped header
// set, so it is fixed here rather than configurable.
func setHeaders(req *http.Request, creds Credentials) {
	req.Header.Set("accept", "application/graphql-response+json, application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("origin", "https://live.kompa.ai")
	req.Header.Set("referer", "https://live.kompa.ai/")
	req.Header.Set("user-agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) "+
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36")
	req.Header.Set("x-token", creds.Token)
	req.Header.Set("x-refresh-token", creds.RefreshToken)
}

// contentTypes is the fixed channel filter the upstream expects on every
// buzz-scoped query.
var contentTypes = []string{
	"FBPAGE_TOPIC", "FBPAGE_COMMENT", "FBGROUP_TOPIC", "FBGROUP_COMMENT",
	"FBUSER_TOPIC", "FBUSER_COMMENT", "FORUM_TOPIC", "FORUM_COMMENT",
	"NEWS_TOPIC", "NEWS_COMMENT", "YOUTUBE_TOPIC", "YOUTUBE_COMMENT",
	"BLOG_TOPIC", "BLOG_COMMENT", "QA_TOPIC", "QA_COMMENT",
	"SNS_TOPIC", "SNS_COMMENT", "TIKTOK_TOPIC", "TIKTOK_COMMENT",
	"LINKEDIN_TOPIC", "LINKEDIN_COMMENT", "ECOMMERCE_TOPIC", "ECOMMERCE_COMMENT",
	"THREADS_TOPIC", "THREADS_COMMENT",
}

var labelLevels = []string{"NONE", "LEVEL_1", "LEVEL_2", "LEVEL_3"}
