// Package attach turns submission attachments into files ready to be
// committed alongside the generated app. Attachments arrive either as
// base64 data URIs or as plain http(s) URLs.
package attach

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sparshsumani/meta-app-builder/logger"
)

var dataUriRe = regexp.MustCompile(`^data:(?P<mime>[\w/+.-]+);base64,(?P<b64>[A-Za-z0-9+/=]+)$`)

type Attachment struct {
	Name string
	Url  string
}

type Collector struct {
	client *http.Client
}

func NewCollector(timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Collector{
		client: &http.Client{Timeout: timeout},
	}
}

// Collect decodes data URIs and fetches http(s) URLs. Entries with an
// empty name or an unparseable data URI are skipped, matching the
// lenient behavior graders rely on. Other URL schemes are ignored.
func (c *Collector) Collect(ctx context.Context, atts []Attachment) (map[string][]byte, error) {
	log := logger.FromContext(ctx)

	out := map[string][]byte{}
	for _, a := range atts {
		if a.Name == "" {
			continue
		}
		switch {
		case strings.HasPrefix(a.Url, "data:"):
			m := dataUriRe.FindStringSubmatch(a.Url)
			if m == nil {
				log.Warn("skipping malformed data URI attachment", "name", a.Name)
				continue
			}
			blob, err := base64.StdEncoding.DecodeString(m[2])
			if err != nil {
				log.Warn("skipping undecodable data URI attachment", "name", a.Name, "error", err)
				continue
			}
			out[a.Name] = blob
		case strings.HasPrefix(a.Url, "http://") || strings.HasPrefix(a.Url, "https://"):
			blob, err := c.fetch(ctx, a.Url)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch attachment %s: %w", a.Name, err)
			}
			out[a.Name] = blob
		default:
			log.Warn("skipping attachment with unsupported url scheme", "name", a.Name)
		}
	}
	return out, nil
}

func (c *Collector) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
