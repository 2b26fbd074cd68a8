// Package github reads single files from one GitHub repository
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"

	gh "github.com/google/go-github/v56/github"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "scotuspredict"
	maxFileBytes   = 8 << 20
)

// Options configures the Client
type Options struct {
	Owner string
	Repo  string
	Ref   string

	// Token is optional; without one the anonymous quota applies
	Token string

	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// File is one fetched file
type File struct {
	Path    string
	HTMLURL string
	Text    string
}

// Client wraps go-github for read only content access
type Client struct {
	gh       *gh.Client
	http     *http.Client
	opts     Options
	log      logger.Logger
	maxBytes int64
}

// NewClient builds a client; BaseURL overrides api.github.com
func NewClient(o Options) (*Client, error) {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}

	hc := &http.Client{}
	if o.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.Token})
		hc = oauth2.NewClient(context.Background(), ts)
	}
	hc.Timeout = o.Timeout

	client := gh.NewClient(hc)
	client.UserAgent = o.UserAgent
	if o.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(o.BaseURL, "/") + "/")
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "github: base url %q", o.BaseURL)
		}
		client.BaseURL = u
	}
	return &Client{gh: client, http: hc, opts: o, log: *logger.Named("github"), maxBytes: maxFileBytes}, nil
}

// Repository names the owner/repo@ref the client reads from
func (c *Client) Repository() string {
	return c.opts.Owner + "/" + c.opts.Repo + "@" + c.opts.Ref
}

// File fetches path at the configured ref; every failure is an Upstream error
func (c *Client) File(ctx context.Context, path string) (File, error) {
	start := time.Now()
	var opt *gh.RepositoryContentGetOptions
	if c.opts.Ref != "" {
		opt = &gh.RepositoryContentGetOptions{Ref: c.opts.Ref}
	}

	fc, _, resp, err := c.gh.Repositories.GetContents(ctx, c.opts.Owner, c.opts.Repo, path, opt)
	if err != nil {
		return File{}, perr.Upstreamf(err, "github: fetch %s", path)
	}
	if fc == nil {
		return File{}, perr.Upstreamf(nil, "github: %s is a directory", path)
	}

	var text string
	// the contents api sends no content above 1MB; follow the raw link instead
	if fc.GetEncoding() == "none" || (fc.Content == nil && fc.GetSize() > 0) {
		if text, err = c.download(ctx, fc.GetDownloadURL()); err != nil {
			return File{}, perr.Upstreamf(err, "github: download %s", path)
		}
	} else if text, err = fc.GetContent(); err != nil {
		return File{}, perr.Upstreamf(err, "github: decode %s", path)
	}

	ev := c.log.Debug().Str("path", path).Dur("elapsed", time.Since(start))
	if resp != nil {
		ev = ev.Int("rate_remaining", resp.Rate.Remaining)
	}
	ev.Msg("github file fetched")

	return File{Path: fc.GetPath(), HTMLURL: fc.GetHTMLURL(), Text: text}, nil
}

func (c *Client) download(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", fmt.Errorf("no download url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", res.StatusCode)
	}
	// one byte past the cap tells a full file from a truncated one
	b, err := io.ReadAll(io.LimitReader(res.Body, c.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(b)) > c.maxBytes {
		return "", fmt.Errorf("file exceeds %d bytes", c.maxBytes)
	}
	return string(b), nil
}
