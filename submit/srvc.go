// Package submit implements the deploy pipeline behind /submit and
// /revise: credential check, attachment collection, app generation,
// GitHub Pages publish, history record, evaluation notification.
package submit

import (
	"context"

	"github.com/sparshsumani/meta-app-builder/attach"
	"github.com/sparshsumani/meta-app-builder/conf"
	"github.com/sparshsumani/meta-app-builder/ghpages"
	"github.com/sparshsumani/meta-app-builder/store"
)

// SiteGenerator produces the {path -> text} site files for a brief.
type SiteGenerator interface {
	Generate(ctx context.Context, brief string, checks []string, attachments []string) (map[string]string, error)
}

// Publisher pushes files to the named repository and enables Pages.
type Publisher interface {
	Deploy(ctx context.Context, repo string, files map[string][]byte, message string) (ghpages.Deployment, error)
}

// Collector resolves attachments into file contents.
type Collector interface {
	Collect(ctx context.Context, atts []attach.Attachment) (map[string][]byte, error)
}

// Notifier delivers the completion payload to the evaluation URL.
type Notifier interface {
	Notify(ctx context.Context, url string, body any) error
}

type SubmitSrvc struct {
	studentEmail  string
	studentSecret string
	repoPrefix    string

	gen       SiteGenerator
	pub       Publisher
	collector Collector
	deploys   *store.DeployStore
	notifier  Notifier
}

func NewSubmitSrvc(
	c *conf.Conf,
	gen SiteGenerator,
	pub Publisher,
	collector Collector,
	deploys *store.DeployStore,
	notifier Notifier,
) *SubmitSrvc {
	return &SubmitSrvc{
		studentEmail:  c.StudentEmail,
		studentSecret: c.StudentSecret,
		repoPrefix:    c.GhRepoPrefix,
		gen:           gen,
		pub:           pub,
		collector:     collector,
		deploys:       deploys,
		notifier:      notifier,
	}
}
