package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/font"
)

const defaultUserAgent = "objectfield/1.0"

// Loader fetches fonts and models from http(s) URLs or local paths. Remote
// files are cached under CacheDir and fetched at most once.
type Loader struct {
	CacheDir string
	Client   *http.Client
}

func NewLoader(cacheDir string) *Loader {
	return &Loader{
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// LoadFont returns a face parsed from the font at rawURL.
func (l *Loader) LoadFont(ctx context.Context, rawURL string, size float64) (font.Face, error) {
	path, err := l.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read font %s: %w", path, err)
	}
	face, err := ParseFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("assets: parse font %s: %w", rawURL, err)
	}
	return face, nil
}

// LoadModel returns a local path to the model at rawURL.
func (l *Loader) LoadModel(ctx context.Context, rawURL string) (string, error) {
	return l.fetch(ctx, rawURL)
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("assets: empty url")
	}
	if !isRemote(rawURL) {
		path := strings.TrimPrefix(rawURL, "file://")
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("assets: %w", err)
		}
		return path, nil
	}

	cached := filepath.Join(l.cacheDir(), cacheName(rawURL))
	if info, err := os.Stat(cached); err == nil && info.Size() > 0 {
		return cached, nil
	}
	if err := l.download(ctx, rawURL, cached); err != nil {
		return "", err
	}
	return cached, nil
}

func (l *Loader) download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("assets: download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("assets: download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("assets: download %s: HTTP %d", rawURL, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("assets: download: %w", err)
	}
	tmp := dest + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("assets: download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("assets: download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("assets: download: %w", err)
	}
	return os.Rename(tmp, dest)
}

func (l *Loader) cacheDir() string {
	if l.CacheDir != "" {
		return l.CacheDir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "objectfield")
	}
	return filepath.Join(os.TempDir(), "objectfield")
}

func isRemote(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// cacheName derives a stable file name from the host and path of rawURL.
func cacheName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "download"
	}
	name := u.Host + u.Path
	if u.RawQuery != "" {
		name += "_" + u.RawQuery
	}
	name = safeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_.")
	if len(name) > 96 {
		name = name[len(name)-96:]
	}
	if name == "" {
		return "download"
	}
	return name
}
