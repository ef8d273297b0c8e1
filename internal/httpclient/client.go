package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Config holds settings for the HTTP client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Retries   int
}

// retryRoundTripper wraps a base RoundTripper to inject a User-Agent and
// perform simple retry logic on transport errors and 5xx responses.
type retryRoundTripper struct {
	base      http.RoundTripper
	userAgent string
	retries   int
}

func (rt *retryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.base == nil {
		rt.base = http.DefaultTransport
	}

	var resp *http.Response
	var err error

	for attempt := 0; ; attempt++ {
		// Clone the request to avoid mutations across retries
		r := req.Clone(req.Context())
		if rt.userAgent != "" {
			r.Header.Set("User-Agent", rt.userAgent)
		}

		resp, err = rt.base.RoundTrip(r)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if attempt >= rt.retries {
			if err != nil {
				return nil, err
			}
			return resp, nil
		}

		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(time.Duration(100*(1<<attempt)) * time.Millisecond)
	}
}

// New returns a configured HTTP client. Redirects are followed; registry
// endpoints occasionally move behind one.
func New(cfg Config) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: &retryRoundTripper{
			base:      transport,
			userAgent: cfg.UserAgent,
			retries:   cfg.Retries,
		},
		Timeout: cfg.Timeout,
	}
}
