package submit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sparshsumani/meta-app-builder/attach"
	"github.com/sparshsumani/meta-app-builder/ghpages"
	"github.com/sparshsumani/meta-app-builder/logger"
	"github.com/sparshsumani/meta-app-builder/store"
)

// Submit runs the whole deploy pipeline for one submission. Round 1
// and later rounds go through the same path: the repository name is
// derived from the task, so a revision lands in the same repo.
func (s *SubmitSrvc) Submit(ctx context.Context, req *SubmissionRequest) (*DeployResult, error) {
	started := time.Now()

	if err := req.IsValid(); err != nil {
		return nil, err
	}
	if req.Email != s.studentEmail || req.Secret != s.studentSecret {
		return nil, newErrInvalidCredentials()
	}

	ctx = logger.WithTask(ctx, req.Task)
	log := logger.FromContext(ctx)

	attFiles, err := s.collector.Collect(ctx, toAttachments(req.Attachments))
	if err != nil {
		return nil, newErrAttachmentFetch().SetDebug(err)
	}

	names := make([]string, 0, len(attFiles))
	for name := range attFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	genFiles, err := s.gen.Generate(ctx, req.Brief, req.Checks, names)
	if err != nil {
		return nil, newErrGenerationFailed().SetDebug(err)
	}

	files := make(map[string][]byte, len(genFiles)+len(attFiles))
	for path, text := range genFiles {
		files[path] = []byte(text)
	}
	for path, blob := range attFiles {
		files[path] = blob
	}

	repo := ghpages.RepoName(s.repoPrefix, req.Task)
	message := fmt.Sprintf("initial: %s", req.Task)
	if req.Round > 1 {
		message = fmt.Sprintf("revise: %s", req.Task)
	}

	dep, err := s.pub.Deploy(ctx, repo, files, message)
	if err != nil {
		return nil, newErrDeployFailed().SetDebug(err)
	}
	log.Info("deployed", "repo", repo, "commit", dep.CommitSha, "round", req.Round)

	err = s.deploys.RecordDeploy(store.Deployment{
		Id:        uuid.New().String(),
		Task:      req.Task,
		Round:     req.Round,
		Nonce:     req.Nonce,
		RepoUrl:   dep.RepoUrl,
		PagesUrl:  dep.PagesUrl,
		CommitSha: dep.CommitSha,
	}, genFiles)
	if err != nil {
		// the site is already live, losing the history row is not fatal
		log.Error("failed to record deployment", "error", err)
	}

	result := &DeployResult{
		RepoUrl:   dep.RepoUrl,
		PagesUrl:  dep.PagesUrl,
		CommitSha: dep.CommitSha,
		LatencyMs: time.Since(started).Milliseconds(),
	}

	notifyBody := map[string]any{
		"email":      req.Email,
		"task":       req.Task,
		"round":      req.Round,
		"nonce":      req.Nonce,
		"repo_url":   result.RepoUrl,
		"pages_url":  result.PagesUrl,
		"commit_sha": result.CommitSha,
		"latency_ms": result.LatencyMs,
	}
	if err := s.notifier.Notify(ctx, req.EvaluationUrl, notifyBody); err != nil {
		log.Warn("evaluation notification failed", "url", req.EvaluationUrl, "error", err)
	}

	return result, nil
}

func toAttachments(atts []Attachment) []attach.Attachment {
	out := make([]attach.Attachment, len(atts))
	for i, a := range atts {
		out[i] = attach.Attachment{Name: a.Name, Url: a.Url}
	}
	return out
}
