package submit

// SubmissionRequest is the JSON body of POST /submit and POST /revise.
type SubmissionRequest struct {
	Email         string       `json:"email" validate:"required,email"`
	Secret        string       `json:"secret" validate:"required"`
	Task          string       `json:"task" validate:"required"`
	Round         int          `json:"round" validate:"required,gte=1"`
	Nonce         string       `json:"nonce" validate:"required"`
	Brief         string       `json:"brief" validate:"required"`
	Checks        []string     `json:"checks"`
	EvaluationUrl string       `json:"evaluation_url" validate:"required,url"`
	Attachments   []Attachment `json:"attachments" validate:"dive"`
}

// Attachment carries a file by name; the url is either a base64 data
// URI or an http(s) URL the service fetches.
type Attachment struct {
	Name string `json:"name" validate:"required"`
	Url  string `json:"url" validate:"required"`
}

// DeployResult is what a successful submission produced.
type DeployResult struct {
	RepoUrl   string
	PagesUrl  string
	CommitSha string
	LatencyMs int64
}
