package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/labfluence-labs/synclaunch/internal/branding"
)

const githubAPIBase = "https://api.github.com"

// Release represents a GitHub release.
type Release struct {
	Version   string    `json:"tag_name"`
	Assets    []Asset   `json:"assets"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Asset represents a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
}

// Updater queries the release feed for the configured repository.
type Updater struct {
	currentVersion string
	httpClient     *http.Client
	apiBase        string
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(u *Updater) {
		u.apiBase = strings.TrimRight(base, "/")
	}
}

// New creates an Updater with the given current version and options.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		httpClient:     http.DefaultClient,
		apiBase:        githubAPIBase,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CheckLatestVersion fetches the latest release from GitHub.
func (u *Updater) CheckLatestVersion() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", u.apiBase, branding.GitHubRepo())

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("release not found")
	case http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	default:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	return &release, nil
}

// ArchiveName returns the expected release archive filename for the current
// platform, e.g. synclaunch_linux_amd64.tar.gz.
func ArchiveName() string {
	ext := ".tar.gz"
	if runtime.GOOS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", branding.CLIName(), runtime.GOOS, runtime.GOARCH, ext)
}

// AssetForPlatform finds the release asset matching the current OS/arch.
func AssetForPlatform(assets []Asset) (*Asset, error) {
	expected := ArchiveName()
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	// Fall back to matching the os_arch pattern anywhere in the name.
	pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s/%s (expected %s)", runtime.GOOS, runtime.GOARCH, expected)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}

// CompareVersions compares two version strings using semver.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// A leading "v" is tolerated on either side.
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// IsUpdateAvailable returns true if latest is newer than current.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
