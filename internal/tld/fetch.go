package tld

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultRemoteURL is the IANA TLD registry; override with --tld-url.
const DefaultRemoteURL = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"

// Fetch downloads and parses a remote TLD list. The caller owns the client
// configuration (timeout, retries) and the context deadline.
func Fetch(ctx context.Context, client *http.Client, url string) (Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build tld request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tld list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch tld list: unexpected status %d from %s", resp.StatusCode, url)
	}
	return Parse(resp.Body)
}
