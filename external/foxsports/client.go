package foxsports

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-match-fetcher/internal/domain/matchdata"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"github.com/riskibarqy/cricket-match-fetcher/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	userKeyParam   = matchdata.UserKeyParam
	defaultTimeout = 100 * time.Second
)

var userKeyParamRegex = regexp.MustCompile(userKeyParam + `=[^&\s"']*`)

type ClientConfig struct {
	HTTPClient *http.Client
	// Token is only used to scrub the key out of error text and logs.
	Token   string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client issues single-shot GETs against the Fox Sports stats API.
type Client struct {
	httpClient *http.Client
	token      string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: httpClient,
		token:      cfg.Token,
		logger:     logger,
	}
}

// Fetch performs one GET and returns the full body. Non-2xx responses are errors.
func (c *Client) Fetch(ctx context.Context, endpoint, fullURL string) (string, error) {
	body, err := c.executeRequest(ctx, endpoint, fullURL)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to fetch "+endpoint+": "+err.Error(),
			"endpoint", endpoint,
			"url", redactAPIURL(fullURL),
		)
		return "", err
	}
	return body, nil
}

func (c *Client) executeRequest(ctx context.Context, endpoint, fullURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", crerr.Wrapf(err, "build request for %s", endpoint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Newf("send request for %s: %s", endpoint, sanitizeSensitiveText(err.Error(), c.token))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", crerr.Wrapf(err, "read response body for %s", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", crerr.Wrapf(usecase.ErrUpstreamStatus, "%s: provider status=%d body=%s", endpoint, resp.StatusCode, sanitizeSensitiveText(abbreviateBody(raw), c.token))
	}

	return string(raw), nil
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	value = userKeyParamRegex.ReplaceAllString(value, userKeyParam+"=REDACTED")
	return value
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return userKeyParamRegex.ReplaceAllString(rawURL, userKeyParam+"=REDACTED")
	}
	query := parsed.Query()
	if query.Has(userKeyParam) {
		query.Set(userKeyParam, "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
