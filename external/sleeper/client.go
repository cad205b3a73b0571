package sleeper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sleeper-report/internal/domain/league"
	"github.com/riskibarqy/sleeper-report/internal/domain/player"
	"github.com/riskibarqy/sleeper-report/internal/domain/trending"
	"github.com/riskibarqy/sleeper-report/internal/platform/coerce"
	"github.com/riskibarqy/sleeper-report/internal/platform/logging"
	"github.com/riskibarqy/sleeper-report/internal/usecase"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultBaseURL      = "https://api.sleeper.app/v1"
	defaultSport        = "nfl"
	defaultTimeout      = 20 * time.Second
	defaultMaxBodyBytes = 64 << 20
	defaultUserAgent    = "sleeper-report/1.0"
)

var errUnexpectedStatus = crerr.New("unexpected provider status")

var _ usecase.PlayerDataProvider = (*Client)(nil)

type ClientConfig struct {
	HTTPClient   *fasthttp.Client
	BaseURL      string
	Sport        string
	Timeout      time.Duration
	MaxBodyBytes int
	UserAgent    string
	Logger       *logging.Logger
}

// Client reads the public Sleeper API. Requests are never retried.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	sport      string
	timeout    time.Duration
	userAgent  string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodyBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	sport := strings.ToLower(strings.TrimSpace(cfg.Sport))
	if sport == "" {
		sport = defaultSport
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sport:      sport,
		timeout:    timeout,
		userAgent:  userAgent,
		logger:     logger.With("component", "sleeper"),
	}
}

func (c *Client) FetchState(ctx context.Context) (league.State, error) {
	var state league.State
	if _, err := c.doJSON(ctx, "state", "/state/"+c.sport, nil, &state); err != nil {
		return league.State{}, err
	}
	return state, nil
}

func (c *Client) FetchPlayers(ctx context.Context) (player.Directory, error) {
	const endpoint = "players"

	raw, err := c.get(ctx, endpoint, "/players/"+c.sport, nil)
	if err != nil {
		return nil, err
	}

	decoded, err := player.DecodeDirectory(raw)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	if decoded.Skipped > 0 {
		c.logger.DebugContext(ctx, "skipped malformed player records", "skipped", decoded.Skipped, "kept", len(decoded.Directory))
	}

	return decoded.Directory, nil
}

func (c *Client) FetchTrending(ctx context.Context, direction trending.Direction, lookbackHours, limit int) ([]trending.Entry, error) {
	if _, err := trending.ParseDirection(string(direction)); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	endpoint := "trending/" + string(direction)
	query := url.Values{}
	query.Set("lookback_hours", strconv.Itoa(lookbackHours))
	query.Set("limit", strconv.Itoa(limit))

	var items []trendingItem
	if _, err := c.doJSON(ctx, endpoint, "/players/"+c.sport+"/trending/"+string(direction), query, &items); err != nil {
		return nil, err
	}

	out := make([]trending.Entry, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.PlayerID)
		if id == "" {
			continue
		}
		out = append(out, trending.Entry{PlayerID: id, Count: item.Count.Or(0)})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, query url.Values, target any) ([]byte, error) {
	raw, err := c.get(ctx, endpoint, path, query)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: crerr.Wrap(err, "decode provider payload")}
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("sleeper.endpoint", endpoint),
			attribute.String("sleeper.url", fullURL),
		)
	}

	started := time.Now()
	raw, status, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		fetchErr := &FetchError{Endpoint: endpoint, StatusCode: status, Err: err}
		c.logger.WarnContext(ctx, "sleeper fetch failed",
			"endpoint", endpoint,
			"url", fullURL,
			"status", status,
			"duration", time.Since(started),
			"error", err,
		)
		return nil, fetchErr
	}

	c.logger.DebugContext(ctx, "sleeper fetch",
		"endpoint", endpoint,
		"url", fullURL,
		"status", status,
		"bytes", len(raw),
		"duration", time.Since(started),
	)
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, 0, context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return nil, 0, crerr.Wrap(err, "send request")
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, status, crerr.Wrapf(errUnexpectedStatus, "body=%s", abbreviateBody(body))
	}

	// resp is pooled; the body must outlive it.
	raw := make([]byte, len(body))
	copy(raw, body)
	return raw, status, nil
}

type trendingItem struct {
	PlayerID string     `json:"player_id"`
	Count    coerce.Int `json:"count"`
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
