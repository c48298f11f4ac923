package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Release coordinates on GitHub.
const (
	DefaultOwner           = "abhisek"
	DefaultRepo            = "thermoviz"
	DefaultAPIBaseURL      = "https://api.github.com"
	DefaultDownloadBaseURL = "https://github.com"
)

// Checker looks up and installs GitHub releases.
type Checker struct {
	client          *http.Client
	baseURL         string
	downloadBaseURL string
	owner           string
	repo            string
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout bounds every HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL points release lookups at another API host.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.baseURL = url }
}

// WithDownloadBaseURL points asset downloads at another host.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithRepo overrides the release repository.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) { c.owner, c.repo = owner, repo }
}

func withExecPath(f func() (string, error)) Option {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker creates a Checker for the thermoviz releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: 10 * time.Second},
		baseURL:         DefaultAPIBaseURL,
		downloadBaseURL: DefaultDownloadBaseURL,
		owner:           DefaultOwner,
		repo:            DefaultRepo,
		execPath:        os.Executable,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CheckInput is the running version.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest release.
type CheckResult struct {
	LatestVersion   string
	ReleaseURL      string
	UpdateAvailable bool
}

type latestRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with input.Version.
// Non-semver versions (development builds) never report an update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	body, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}

	var rel latestRelease
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if !semver.IsValid(rel.TagName) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}

	current, ok := canonicalVersion(input.Version)
	return &CheckResult{
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
		UpdateAvailable: ok && semver.Compare(rel.TagName, current) > 0,
	}, nil
}

// canonicalVersion adds the "v" prefix semver expects and reports whether
// the result is a valid version.
func canonicalVersion(v string) (string, bool) {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v, semver.IsValid(v)
}

func (c *Checker) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
