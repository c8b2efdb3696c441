package fetcher

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const maxBodyBytes = 2 << 20 // pages past 2MB are not registry documents

// PlainTransport fetches via net/http with browser-like headers. Suitable
// for hosts without automated-traffic defenses.
type PlainTransport struct {
	client *http.Client
}

// NewPlainTransport creates a PlainTransport with the given request timeout.
func NewPlainTransport(timeout time.Duration) *PlainTransport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PlainTransport{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get fetches the URL. A challenge page detected in an otherwise-OK
// response is reported as 403 so the policy engine treats it as a block.
func (t *PlainTransport) Get(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", eris.Wrap(err, "transport: create request")
	}
	setBrowserHeaders(req)

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, "", eris.Wrap(err, "transport: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, "", eris.Wrap(err, "transport: read body")
	}
	body := string(raw)

	if blocked, blockType := DetectBlock(resp.StatusCode, resp.Header, body); blocked {
		zap.L().Warn("transport: challenge page detected",
			zap.String("url", url),
			zap.String("block_type", string(blockType)),
		)
		return http.StatusForbidden, "", nil
	}

	return resp.StatusCode, body, nil
}

// setBrowserHeaders mirrors a desktop browser request closely enough that
// neither host serves a degraded page.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}
