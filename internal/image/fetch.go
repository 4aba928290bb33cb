package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/lettercat/internal/util"
)

// Fetcher resolves a locator to its encoded image bytes.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) (io.ReadCloser, error)
}

// FileFetcher reads locators as slash separated paths below Root.
type FileFetcher struct {
	Root string
}

func (f FileFetcher) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel := filepath.FromSlash(strings.TrimPrefix(locator, "/"))
	if !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("locator %q escapes image root", locator)
	}
	return os.Open(filepath.Join(f.Root, rel))
}

// HTTPFetcher downloads http and https locators.
type HTTPFetcher struct {
	Client *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	b, err := util.GetBytes(ctx, f.Client, locator)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// Router sends http(s) locators to Remote and everything else to Local.
type Router struct {
	Local  Fetcher
	Remote Fetcher
}

// NewRouter returns a Router reading local locators below root.
func NewRouter(root string, client *http.Client) Router {
	return Router{
		Local:  FileFetcher{Root: root},
		Remote: HTTPFetcher{Client: client},
	}
}

func (r Router) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	if isRemote(locator) {
		if r.Remote == nil {
			return nil, fmt.Errorf("no remote fetcher for %q", locator)
		}
		return r.Remote.Fetch(ctx, locator)
	}
	if r.Local == nil {
		return nil, fmt.Errorf("no local fetcher for %q", locator)
	}
	return r.Local.Fetch(ctx, locator)
}

func isRemote(locator string) bool {
	l := strings.ToLower(locator)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
