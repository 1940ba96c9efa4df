package submit

import (
	validator "gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// IsValid checks the request shape: struct tags plus attachment name
// uniqueness, which the tag language cannot express.
func (r *SubmissionRequest) IsValid() error {
	if err := validate.Struct(r); err != nil {
		return newErrInvalidRequest(err.Error())
	}

	seen := map[string]bool{}
	for _, a := range r.Attachments {
		if seen[a.Name] {
			return newErrDuplicateAttachment(a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}
