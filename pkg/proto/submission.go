package proto

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// SubmissionStatus is the review status of a submission. This is separate
// from the hackathon lifecycle status.
type SubmissionStatus string

const (
	// SubmissionDraft is a work-in-progress submission.
	SubmissionDraft SubmissionStatus = "DRAFT"

	// SubmissionSubmitted is a finalized submission.
	SubmissionSubmitted SubmissionStatus = "SUBMITTED"
)

// Value implements driver.Valuer.
func (s SubmissionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *SubmissionStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = SubmissionStatus(v)
	case []byte:
		*s = SubmissionStatus(v)
	default:
		return fmt.Errorf("invalid submission status: %v", value)
	}
	return nil
}

// FileView is the caller-facing projection of a submission file produced by
// capability-scoped access resolution. DownloadURL is only set for elevated
// requesters; Signed distinguishes the degraded unsigned path.
type FileView struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mimeType"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	Signed      bool      `json:"isSigned"`
	ExpiresAt   time.Time `json:"expiresAt,omitempty"`
}
