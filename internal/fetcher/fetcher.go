// Package fetcher implements the host-aware fetch policy engine: per-host
// throttling delays, retry budgets, rate-limit backoff, and defensive-block
// abandonment, wrapped around a plain or challenge-capable transport.
package fetcher

import "context"

// HostClass selects the policy and transport for a request.
type HostClass string

const (
	// HostRegistry is the national company-registration lookup source.
	HostRegistry HostClass = "registry"
	// HostDirectory is the business-directory source behind automated
	// traffic defenses.
	HostDirectory HostClass = "directory"
)

// Purpose distinguishes search-page requests from detail-page requests.
// The directory search endpoint is far more defense-sensitive than its
// detail pages, so it gets a reduced retry budget.
type Purpose string

const (
	PurposeSearch Purpose = "search"
	PurposeDetail Purpose = "detail"
)

// Request describes one fetch. Immutable, constructed per call.
type Request struct {
	URL     string
	Host    HostClass
	Purpose Purpose
}

// Outcome is the result of a fetch. An empty Body with TerminalFailure set
// means all retries were exhausted or a policy abort fired; Fetch never
// returns an error — callers branch on the body being absent.
type Outcome struct {
	Body            string
	TerminalFailure bool
}

// Transport fetches a URL and returns the HTTP status code and body.
// Implementations: PlainTransport (net/http) for the registry and
// BrowserTransport (headless browser, passes automated-traffic challenges)
// for the directory.
type Transport interface {
	Get(ctx context.Context, url string) (status int, body string, err error)
}
