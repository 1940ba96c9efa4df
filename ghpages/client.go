// Package ghpages publishes generated site content to a GitHub Pages
// repository: the REST API creates the repository and flips Pages on,
// go-git pushes the actual content.
package ghpages

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultApiBase = "https://api.github.com"

// Client is a minimal GitHub REST v3 client covering the three calls
// the publisher needs.
type Client struct {
	apiBase string
	token   string
	http    *http.Client
}

func NewClient(token string, timeout time.Duration) *Client {
	return NewClientWithApiBase(token, defaultApiBase, timeout)
}

func NewClientWithApiBase(token string, apiBase string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiBase: apiBase,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type repoInfo struct {
	HtmlUrl  string `json:"html_url"`
	CloneUrl string `json:"clone_url"`
}

// EnsureRepo returns the repository, creating it as a public auto-init
// repo when it does not exist yet.
func (c *Client) EnsureRepo(ctx context.Context, owner string, repo string) (RepoInfo, error) {
	var info repoInfo
	status, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s", owner, repo), nil, &info)
	if err != nil {
		return RepoInfo{}, err
	}
	if status == http.StatusNotFound {
		body := map[string]any{"name": repo, "private": false, "auto_init": true}
		status, err = c.do(ctx, http.MethodPost, "/user/repos", body, &info)
		if err != nil {
			return RepoInfo{}, err
		}
		if status != http.StatusCreated {
			return RepoInfo{}, fmt.Errorf("failed to create repo %s/%s: status %d", owner, repo, status)
		}
	} else if status != http.StatusOK {
		return RepoInfo{}, fmt.Errorf("failed to get repo %s/%s: status %d", owner, repo, status)
	}
	return RepoInfo{HtmlUrl: info.HtmlUrl, CloneUrl: info.CloneUrl}, nil
}

type RepoInfo struct {
	HtmlUrl  string
	CloneUrl string
}

// EnablePages turns on GitHub Pages serving from the root of main and
// returns the Pages URL. Enabling is idempotent: an already-enabled
// site answers the POST with 409, the PUT below updates it in place.
func (c *Client) EnablePages(ctx context.Context, owner string, repo string) (string, error) {
	body := map[string]any{"source": map[string]string{"branch": "main", "path": "/"}}
	path := fmt.Sprintf("/repos/%s/%s/pages", owner, repo)

	status, err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated && status != http.StatusNoContent {
		if _, err := c.do(ctx, http.MethodPut, path, body, nil); err != nil {
			return "", err
		}
	}

	var pages struct {
		HtmlUrl string `json:"html_url"`
		Url     string `json:"url"`
	}
	status, err = c.do(ctx, http.MethodGet, path, nil, &pages)
	if err != nil {
		return "", err
	}
	if status == http.StatusOK {
		if pages.HtmlUrl != "" {
			return pages.HtmlUrl, nil
		}
		if pages.Url != "" {
			return pages.Url, nil
		}
	}
	return fmt.Sprintf("https://%s.github.io/%s/", owner, repo), nil
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp.StatusCode, fmt.Errorf("failed to decode github response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
