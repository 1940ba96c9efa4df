package ghpages

import (
	"context"
	"strings"
	"time"

	githttp "gopkg.in/src-d/go-git.v4/plumbing/transport/http"
)

type Publisher struct {
	client   *Client
	username string
	token    string
}

func NewPublisher(token string, username string, timeout time.Duration) *Publisher {
	return &Publisher{
		client:   NewClient(token, timeout),
		username: username,
		token:    token,
	}
}

type Deployment struct {
	RepoUrl   string
	PagesUrl  string
	CommitSha string
}

// Deploy makes sure the repository exists, pushes the files on top of
// main and enables Pages. Calling it again for the same repo updates
// the deployment in place.
func (p *Publisher) Deploy(ctx context.Context, repo string, files map[string][]byte, message string) (Deployment, error) {
	info, err := p.client.EnsureRepo(ctx, p.username, repo)
	if err != nil {
		return Deployment{}, err
	}

	auth := &githttp.BasicAuth{Username: p.username, Password: p.token}
	sha, err := PushFiles(ctx, info.CloneUrl, auth, files, message)
	if err != nil {
		return Deployment{}, err
	}

	pagesUrl, err := p.client.EnablePages(ctx, p.username, repo)
	if err != nil {
		return Deployment{}, err
	}

	return Deployment{
		RepoUrl:   info.HtmlUrl,
		PagesUrl:  pagesUrl,
		CommitSha: sha,
	}, nil
}

// RepoName derives the deterministic repository name for a task. The
// same task always maps to the same repository, which is what makes
// round 2 an update instead of a second deployment.
func RepoName(prefix string, task string) string {
	name := prefix + task
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
