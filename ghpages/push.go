package ghpages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "gopkg.in/src-d/go-git.v4"
	gitconfig "gopkg.in/src-d/go-git.v4/config"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
	"gopkg.in/src-d/go-git.v4/plumbing/transport"
)

const deployBranch = "main"

var mainRefSpec = gitconfig.RefSpec("refs/heads/main:refs/heads/main")

// PushFiles clones the remote, writes the given files over the working
// tree, commits and pushes to main. It returns the commit SHA. The
// clone lives in a throwaway temp dir that is removed on return.
func PushFiles(ctx context.Context, remoteUrl string, auth transport.AuthMethod, files map[string][]byte, message string) (string, error) {
	dir, err := os.MkdirTemp("", "ghpages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workdir: %w", err)
	}
	defer os.RemoveAll(dir)

	repo, err := cloneOrInit(ctx, dir, remoteUrl, auth)
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("failed to create dir for %s: %w", name, err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", name, err)
		}
		if _, err := wt.Add(name); err != nil {
			return "", fmt.Errorf("failed to stage %s: %w", name, err)
		}
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "meta-app-builder",
			Email: "meta-app-builder@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		Auth:       auth,
		RefSpecs:   []gitconfig.RefSpec{mainRefSpec},
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return "", fmt.Errorf("failed to push: %w", err)
	}

	return hash.String(), nil
}

// cloneOrInit clones the main branch; a still-empty remote (no initial
// commit yet) gets a fresh local repo with HEAD pointed at main.
func cloneOrInit(ctx context.Context, dir string, remoteUrl string, auth transport.AuthMethod) (*git.Repository, error) {
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           remoteUrl,
		Auth:          auth,
		ReferenceName: plumbing.NewBranchReferenceName(deployBranch),
		SingleBranch:  true,
	})
	if err == nil {
		return repo, nil
	}
	if err != transport.ErrEmptyRemoteRepository {
		return nil, fmt.Errorf("failed to clone %s: %w", remoteUrl, err)
	}

	repo, err = git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteUrl},
	}); err != nil {
		return nil, fmt.Errorf("failed to add remote: %w", err)
	}
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(deployBranch))
	if err := repo.Storer.SetReference(head); err != nil {
		return nil, fmt.Errorf("failed to point HEAD at %s: %w", deployBranch, err)
	}
	return repo, nil
}
