package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize caps the bytes GetBytes reads from one response.
const MaxBodySize = 64 << 20

// ErrBodyTooLarge is returned for responses above MaxBodySize.
var ErrBodyTooLarge = errors.New("response body too large")

// GetBytes fetches url and returns the body of a 200 response.
// A nil client means http.DefaultClient.
func GetBytes(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	if resp.ContentLength > MaxBodySize {
		return nil, fmt.Errorf("GET %s: %w", url, ErrBodyTooLarge)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxBodySize {
		return nil, fmt.Errorf("GET %s: %w", url, ErrBodyTooLarge)
	}
	return b, nil
}
