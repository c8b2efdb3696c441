package fetcher

import (
	"net/http"
	"strings"
)

// BlockType describes the kind of anti-bot block detected.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockCaptcha    BlockType = "captcha"
)

// DetectBlock checks a response for signs of anti-bot protection. Challenge
// pages frequently arrive with status 200, so headers and body markers are
// checked regardless of status.
func DetectBlock(status int, header http.Header, body string) (bool, BlockType) {
	if status == http.StatusForbidden || status == http.StatusServiceUnavailable {
		if header.Get("cf-ray") != "" || header.Get("cf-cache-status") != "" {
			return true, BlockCloudflare
		}
		if header.Get("server") == "cloudflare" {
			return true, BlockCloudflare
		}
	}

	lower := strings.ToLower(body)

	if strings.Contains(lower, "checking your browser") ||
		strings.Contains(lower, "cf-browser-verification") ||
		(strings.Contains(lower, "cloudflare") && strings.Contains(lower, "challenge")) {
		return true, BlockCloudflare
	}

	if strings.Contains(lower, "recaptcha") || strings.Contains(lower, "hcaptcha") {
		return true, BlockCaptcha
	}

	return false, BlockNone
}
