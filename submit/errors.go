package submit

import (
	"fmt"
	"net/http"

	"github.com/sparshsumani/meta-app-builder/srvcerror"
)

const ErrCodeInvalidRequest = "invalid_request"

func newErrInvalidRequest(detail string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidRequest,
		fmt.Sprintf("invalid submission request: %s", detail),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeDuplicateAttachment = "duplicate_attachment"

func newErrDuplicateAttachment(name string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateAttachment,
		fmt.Sprintf("attachment name %q appears more than once", name),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"email/secret mismatch",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeAttachmentFetch = "attachment_fetch_failed"

func newErrAttachmentFetch() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAttachmentFetch,
		"failed to collect submission attachments",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeGenerationFailed = "generation_failed"

func newErrGenerationFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGenerationFailed,
		"failed to generate the app",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeDeployFailed = "deploy_failed"

func newErrDeployFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDeployFailed,
		"failed to publish the app to GitHub Pages",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeDeployNotFound = "deploy_not_found"

func newErrDeployNotFound(task string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDeployNotFound,
		fmt.Sprintf("no deployment recorded for task %q", task),
	).SetHttpStatusCode(http.StatusNotFound)
}
