package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// BrowserTransport renders pages in a headless browser. The full browser
// environment executes the JavaScript challenges the directory host uses to
// filter automated traffic, so pages that a plain client would never see
// come back as ordinary HTML. Requires Chrome/Chromium on the system.
type BrowserTransport struct {
	timeout    time.Duration
	renderWait time.Duration
}

// NewBrowserTransport creates a BrowserTransport with the given per-page
// timeout.
func NewBrowserTransport(timeout time.Duration) *BrowserTransport {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &BrowserTransport{
		timeout:    timeout,
		renderWait: 3 * time.Second,
	}
}

// Get navigates to the URL, waits out the challenge, and returns the
// rendered HTML. A challenge page that survives rendering is reported as
// 403 so the policy engine treats it as a block.
func (t *BrowserTransport) Get(ctx context.Context, url string) (int, string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, t.timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Challenge interstitials resolve themselves after a beat.
		chromedp.Sleep(t.renderWait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return 0, "", eris.Wrap(err, "transport: browser render")
	}

	if blocked, blockType := DetectBlock(http.StatusOK, http.Header{}, html); blocked {
		zap.L().Warn("transport: challenge survived rendering",
			zap.String("url", url),
			zap.String("block_type", string(blockType)),
		)
		return http.StatusForbidden, "", nil
	}

	return http.StatusOK, html, nil
}
