// Package release checks GitHub releases for a newer EduWiki version.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultOwner      = "eduwiki"
	defaultRepo       = "eduwiki"
	defaultTimeout    = 10 * time.Second
)

// DevVersion is the version string of builds without release ldflags.
const DevVersion = "(devel)"

var ErrDevBuild = errors.New("development builds cannot be compared against releases")

// Checker queries the latest release of a GitHub repository.
type Checker struct {
	client     *http.Client
	apiBaseURL string
	owner      string
	repo       string
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout bounds each API request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBaseURL points the checker at a GitHub-compatible API.
func WithAPIBaseURL(u string) Option {
	return func(c *Checker) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// WithRepository selects the repository whose releases are checked.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

// NewChecker returns a Checker for eduwiki/eduwiki on api.github.com. Options
// override the defaults.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: defaultTimeout},
		apiBaseURL: defaultAPIBaseURL,
		owner:      defaultOwner,
		repo:       defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CheckInput struct {
	Version string
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type latestRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check compares input.Version with the latest published release.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := Canonical(input.Version)
	if current == "" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var rel latestRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	latest := Canonical(rel.TagName)
	if latest == "" {
		return nil, fmt.Errorf("latest release has invalid tag %q", rel.TagName)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: semver.Compare(current, latest) < 0,
	}, nil
}

// Canonical normalises a version such as "1.2" or "v1.2.0" to "v1.2.0". It
// returns "" for development builds and anything that is not semver.
func Canonical(version string) string {
	if version == "" || version == DevVersion {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return semver.Canonical(version)
}
