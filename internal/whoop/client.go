package whoop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/runintel/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	BaseURL = "https://api.prod.whoop.com"

	workoutsPath = "/developer/v2/activity/workout"
	recoveryPath = "/developer/v2/recovery"
	profilePath  = "/developer/v2/user/profile/basic"

	// whoop paginates collections, max page size is 25
	pageLimit = 25

	maxRateLimitRetries   = 3
	defaultRetryAfterSecs = 60
)

type tokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
	ForceRefresh(ctx context.Context) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenProvider

	// pause between collection pages, whoop rate limits aggressively
	interPageDelay time.Duration
}

func NewClient(baseURL string, httpClient *http.Client, tokens tokenProvider) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		tokens:         tokens,
		interPageDelay: 500 * time.Millisecond,
	}
}

// Workouts returns all workouts with start >= start and end <= end,
// walking all collection pages.
func (c *Client) Workouts(ctx context.Context, start, end time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "whoop.client.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := c.collectPages(ctx, workoutsPath, start, end)
	if err != nil {
		return nil, err
	}

	workouts := make([]Workout, 0, len(records))
	for _, record := range records {
		var workout Workout
		if err := json.Unmarshal(record, &workout); err != nil {
			return nil, fmt.Errorf("unmarshal workout record: %w", err)
		}
		workouts = append(workouts, workout)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

// Recoveries returns all recovery records in the given range,
// walking all collection pages.
func (c *Client) Recoveries(ctx context.Context, start, end time.Time) (_ []RecoveryRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "whoop.client.recoveries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := c.collectPages(ctx, recoveryPath, start, end)
	if err != nil {
		return nil, err
	}

	recoveries := make([]RecoveryRecord, 0, len(records))
	for _, record := range records {
		var rec RecoveryRecord
		if err := json.Unmarshal(record, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal recovery record: %w", err)
		}
		recoveries = append(recoveries, rec)
	}

	span.SetAttributes(attribute.Int("recoveries.count", len(recoveries)))
	return recoveries, nil
}

// LatestRecovery returns the most recently created recovery record
// since the given time, or nil when whoop has none yet.
func (c *Client) LatestRecovery(ctx context.Context, since time.Time) (*RecoveryRecord, error) {
	recoveries, err := c.Recoveries(ctx, since, time.Now())
	if err != nil {
		return nil, err
	}
	if len(recoveries) == 0 {
		return nil, nil
	}

	latest := recoveries[0]
	for _, rec := range recoveries[1:] {
		if rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	return &latest, nil
}

func (c *Client) Profile(ctx context.Context) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "whoop.client.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBody, err := c.get(ctx, c.baseURL+profilePath)
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := json.Unmarshal(respBody, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &profile, nil
}

type collectionPage struct {
	Records   []json.RawMessage `json:"records"`
	NextToken *string           `json:"next_token"`
}

func (c *Client) collectPages(ctx context.Context, path string, start, end time.Time) ([]json.RawMessage, error) {
	var records []json.RawMessage
	nextToken := ""

	for {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(pageLimit))
		params.Set("start", start.UTC().Format(time.RFC3339))
		params.Set("end", end.UTC().Format(time.RFC3339))
		if nextToken != "" {
			params.Set("nextToken", nextToken)
		}

		respBody, err := c.get(ctx, c.baseURL+path+"?"+params.Encode())
		if err != nil {
			return nil, err
		}

		var page collectionPage
		if err := json.Unmarshal(respBody, &page); err != nil {
			return nil, fmt.Errorf("unmarshal collection page: %w", err)
		}

		records = append(records, page.Records...)

		if page.NextToken == nil || *page.NextToken == "" {
			break
		}
		nextToken = *page.NextToken

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.interPageDelay):
		}
	}

	return records, nil
}

// get performs an authorized GET. A 401 forces a token refresh and one
// retry, a 429 honors the Retry-After header up to maxRateLimitRetries.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	refreshed := false
	rateLimitRetries := 0

	for {
		respBody, statusCode, retryAfterHeader, err := c.doGet(ctx, rawURL)
		if err != nil {
			return nil, err
		}

		switch {
		case statusCode == http.StatusUnauthorized && !refreshed:
			refreshed = true
			log.Warnln("whoop client: got 401, refreshing access token")
			if err := c.tokens.ForceRefresh(ctx); err != nil {
				return nil, fmt.Errorf("refresh token after 401: %w", err)
			}
			continue
		case statusCode == http.StatusTooManyRequests && rateLimitRetries < maxRateLimitRetries:
			rateLimitRetries++
			wait := retryAfter(retryAfterHeader)
			log.Warnf("whoop client: rate limited, retry %d after %s", rateLimitRetries, wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		case statusCode != http.StatusOK:
			return nil, fmt.Errorf("whoop api: unexpected status %d: %s", statusCode, respBody)
		}

		return respBody, nil
	}
}

func (c *Client) doGet(ctx context.Context, rawURL string) (_ []byte, statusCode int, retryAfterHeader string, err error) {
	accessToken, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, 0, "", fmt.Errorf("get access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, "", fmt.Errorf("read response body: %w", err)
	}

	return respBody, resp.StatusCode, resp.Header.Get("Retry-After"), nil
}

func retryAfter(retryAfterHeader string) time.Duration {
	secs, err := strconv.Atoi(retryAfterHeader)
	if err != nil || secs <= 0 {
		secs = defaultRetryAfterSecs
	}
	return time.Duration(secs) * time.Second
}
