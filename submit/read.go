package submit

import (
	"context"
	"errors"

	"github.com/sparshsumani/meta-app-builder/srvcerror"
	"github.com/sparshsumani/meta-app-builder/store"
)

// ListDeployments returns the recorded deployments, newest first.
func (s *SubmitSrvc) ListDeployments(ctx context.Context) ([]store.Deployment, error) {
	deps, err := s.deploys.ListDeploys()
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	if deps == nil {
		deps = []store.Deployment{}
	}
	return deps, nil
}

// PreviewHtml returns the index.html of the task's last recorded
// deployment snapshot.
func (s *SubmitSrvc) PreviewHtml(ctx context.Context, task string) (string, error) {
	snapshot, err := s.deploys.GetSnapshot(task)
	if err != nil {
		if errors.Is(err, store.ErrDeployNotFound) {
			return "", newErrDeployNotFound(task)
		}
		return "", srvcerror.ErrInternalSE().SetDebug(err)
	}
	html, ok := snapshot["index.html"]
	if !ok {
		return "", newErrDeployNotFound(task)
	}
	return html, nil
}
