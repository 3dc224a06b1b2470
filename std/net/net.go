package net

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const userAgent = "scalepage/1.0 (compatible; Go)"

// maxBody caps how much of a document is read.
const maxBody = 8 << 20

// httpClient is a shared HTTP client with reasonable timeouts.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// IsURL reports whether ref names an http or https resource.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Fetch retrieves the content at the given URL via HTTP/HTTPS.
// Returns the response body, content type, and any error.
func Fetch(ctx context.Context, rawURL string) (body []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// ReadDocument loads ref from the network when it is a URL and from the
// filesystem otherwise.
func ReadDocument(ctx context.Context, ref string) (string, error) {
	if IsURL(ref) {
		body, _, err := Fetch(ctx, ref)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", ref, err)
	}
	return string(data), nil
}
